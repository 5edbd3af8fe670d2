package tenant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

func TestDecide_SuperAdminSiemprePermitido(t *testing.T) {
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSuperAdmin}
	assert.NoError(t, tenant.Decide(c, "empresa-cualquiera", tenant.OpRead))
	assert.NoError(t, tenant.Decide(c, "otra", tenant.OpDelete))
	assert.NoError(t, tenant.Decide(c, "", tenant.OpWrite))
}

func TestDecide_RolSinEmpresa(t *testing.T) {
	for _, role := range []tenant.Role{
		tenant.RoleAdmin, tenant.RoleManager, tenant.RoleSales, tenant.RoleSupport, tenant.RoleUser,
	} {
		c := tenant.Caller{ID: "u1", Role: role}
		err := tenant.Decide(c, "empresa-a", tenant.OpRead)
		assert.ErrorIs(t, err, domain.ErrMissingTenant, "rol %s", role)
	}
}

func TestDecide_MismaEmpresaPermitido(t *testing.T) {
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}
	assert.NoError(t, tenant.Decide(c, "empresa-a", tenant.OpWrite))
}

func TestDecide_EmpresaDistintaDenegado(t *testing.T) {
	c := tenant.Caller{ID: "u1", Role: tenant.RoleAdmin, CompanyID: "empresa-a"}
	err := tenant.Decide(c, "empresa-b", tenant.OpDelete)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)

	// el error transporta ambos IDs para el log de auditoría
	var cte *domain.CrossTenantError
	assert.True(t, errors.As(err, &cte))
	assert.Equal(t, "empresa-a", cte.CallerCompany)
	assert.Equal(t, "empresa-b", cte.TargetCompany)
	assert.Equal(t, "delete", cte.Op)
}

func TestCanAssignOther(t *testing.T) {
	assert.NoError(t, tenant.CanAssignOther(tenant.Caller{Role: tenant.RoleSuperAdmin}))
	assert.NoError(t, tenant.CanAssignOther(tenant.Caller{Role: tenant.RoleAdmin, CompanyID: "a"}))

	err := tenant.CanAssignOther(tenant.Caller{Role: tenant.RoleSales, CompanyID: "a"})
	var rge *domain.RoleGuardError
	assert.True(t, errors.As(err, &rge))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCanGrantRole(t *testing.T) {
	sales := tenant.Caller{Role: tenant.RoleSales, CompanyID: "a"}
	admin := tenant.Caller{Role: tenant.RoleAdmin, CompanyID: "a"}

	assert.NoError(t, tenant.CanGrantRole(sales, tenant.RoleUser))
	assert.NoError(t, tenant.CanGrantRole(admin, tenant.RoleAdmin))
	assert.Error(t, tenant.CanGrantRole(sales, tenant.RoleAdmin))
	assert.Error(t, tenant.CanGrantRole(sales, tenant.RoleSuperAdmin))
}

// El auto-borrado se deniega para cualquier rol, incluido super_admin.
func TestCanDeleteUser_AutoBorradoDenegado(t *testing.T) {
	for _, role := range []tenant.Role{
		tenant.RoleSuperAdmin, tenant.RoleAdmin, tenant.RoleSales, tenant.RoleUser,
	} {
		c := tenant.Caller{ID: "u1", Role: role, CompanyID: "a"}
		err := tenant.CanDeleteUser(c, "u1", role)
		var rge *domain.RoleGuardError
		assert.True(t, errors.As(err, &rge), "rol %s", role)
	}
}

func TestCanDeleteUser_NoAdminNoBorraAdmin(t *testing.T) {
	manager := tenant.Caller{ID: "u1", Role: tenant.RoleManager, CompanyID: "a"}
	assert.Error(t, tenant.CanDeleteUser(manager, "u2", tenant.RoleAdmin))
	assert.NoError(t, tenant.CanDeleteUser(manager, "u2", tenant.RoleUser))

	admin := tenant.Caller{ID: "u3", Role: tenant.RoleAdmin, CompanyID: "a"}
	assert.NoError(t, tenant.CanDeleteUser(admin, "u2", tenant.RoleAdmin))
}

func TestValidRole(t *testing.T) {
	assert.True(t, tenant.ValidRole("sales"))
	assert.True(t, tenant.ValidRole("super_admin"))
	assert.False(t, tenant.ValidRole("bodeguero"))
	assert.False(t, tenant.ValidRole(""))
}
