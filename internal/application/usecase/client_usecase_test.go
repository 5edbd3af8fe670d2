package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// Fixture con dos empresas, un cliente en cada una.
func twoCompanyFixture() (*fakeTenantStore, *fakeClientRepo) {
	store := newFakeTenantStore()
	store.put(tenant.KindClient, "cliente-a", "empresa-a")
	store.put(tenant.KindClient, "cliente-b", "empresa-b")

	repo := newFakeClientRepo()
	repo.clients["cliente-a"] = &entity.Client{ID: "cliente-a", CompanyID: "empresa-a", Name: "Acme"}
	repo.clients["cliente-b"] = &entity.Client{ID: "cliente-b", CompanyID: "empresa-b", Name: "Globex"}
	return store, repo
}

func salesOf(company string) tenant.Caller {
	return tenant.Caller{ID: "u-" + company, Role: tenant.RoleSales, CompanyID: company}
}

func adminOf(company string) tenant.Caller {
	return tenant.Caller{ID: "a-" + company, Role: tenant.RoleAdmin, CompanyID: company}
}

func superAdmin() tenant.Caller {
	return tenant.Caller{ID: "u-root", Role: tenant.RoleSuperAdmin}
}

func TestClientGetByID_MismaEmpresa(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	out, err := uc.GetByID(context.Background(), salesOf("empresa-a"), "cliente-a")
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
}

// Un registro de otra empresa debe rechazarse como CrossTenantError, con los
// IDs de ambas empresas disponibles para auditoría.
func TestClientGetByID_OtraEmpresaDenegado(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	_, err := uc.GetByID(context.Background(), salesOf("empresa-a"), "cliente-b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)

	var cross *domain.CrossTenantError
	require.ErrorAs(t, err, &cross)
	assert.Equal(t, "empresa-a", cross.CallerCompany)
	assert.Equal(t, "empresa-b", cross.TargetCompany)
}

func TestClientGetByID_InexistenteEsNotFound(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	_, err := uc.GetByID(context.Background(), salesOf("empresa-a"), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUpdate_OtraEmpresaDenegado(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	name := "renombrado"
	_, err := uc.Update(context.Background(), salesOf("empresa-a"), "cliente-b", dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Equal(t, "Globex", repo.clients["cliente-b"].Name, "el registro ajeno no debe tocarse")
}

func TestClientDelete_OtraEmpresaDenegado(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	err := uc.Delete(context.Background(), salesOf("empresa-a"), "cliente-b")
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Empty(t, repo.deleted, "el borrado nunca debe llegar al repositorio")
}

func TestClientDelete_SuperAdminCualquierEmpresa(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	require.NoError(t, uc.Delete(context.Background(), superAdmin(), "cliente-b"))
	assert.Equal(t, []string{"cliente-b"}, repo.deleted)
}

func TestClientList_AcotadoALaEmpresaDelCaller(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	out, err := uc.List(context.Background(), salesOf("empresa-a"), dto.PageQuery{})
	require.NoError(t, err)

	require.Len(t, out.Clients, 1)
	assert.Equal(t, "cliente-a", out.Clients[0].ID)
	assert.Equal(t, 1, out.Total)

	require.NotNil(t, repo.lastScope)
	assert.False(t, repo.lastScope.All)
	assert.Equal(t, "company_id", repo.lastScope.Column)
	assert.Equal(t, []string{"empresa-a"}, repo.lastScope.IDs)
}

func TestClientList_SuperAdminSinRestriccion(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	out, err := uc.List(context.Background(), superAdmin(), dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, out.Clients, 2)
	assert.True(t, repo.lastScope.All)
}

func TestClientList_CallerSinEmpresa(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	_, err := uc.List(context.Background(), tenant.Caller{ID: "u1", Role: tenant.RoleUser}, dto.PageQuery{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

// La empresa destino de una creación nunca sale del cuerpo de la request para
// callers ligados a empresa.
func TestClientCreate_IgnoraCompanyIDAjeno(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	out, err := uc.Create(context.Background(), salesOf("empresa-a"), dto.CreateClientRequest{
		CompanyID: "empresa-b",
		Name:      "Nuevo",
	})
	require.NoError(t, err)
	assert.Equal(t, "empresa-a", out.CompanyID)
}

func TestResolveCompany(t *testing.T) {
	t.Run("super_admin debe indicar empresa", func(t *testing.T) {
		_, err := resolveCompany(superAdmin(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("super_admin con empresa explícita", func(t *testing.T) {
		got, err := resolveCompany(superAdmin(), "empresa-b")
		require.NoError(t, err)
		assert.Equal(t, "empresa-b", got)
	})
	t.Run("caller ligado siempre crea en la suya", func(t *testing.T) {
		got, err := resolveCompany(salesOf("empresa-a"), "empresa-b")
		require.NoError(t, err)
		assert.Equal(t, "empresa-a", got)
	})
	t.Run("caller ligado sin empresa", func(t *testing.T) {
		_, err := resolveCompany(tenant.Caller{ID: "u1", Role: tenant.RoleUser}, "")
		assert.ErrorIs(t, err, domain.ErrMissingTenant)
	})
}

// Los errores de acceso deben ser opacos aguas abajo: ambos casos (ajeno e
// inexistente) terminan en el mismo 404 del mapper HTTP.
func TestClientGetByID_AjenoEInexistenteMismoTratamiento(t *testing.T) {
	store, repo := twoCompanyFixture()
	uc := NewClientUseCase(repo, newTestAccess(store))

	_, errAjeno := uc.GetByID(context.Background(), salesOf("empresa-a"), "cliente-b")
	_, errInexistente := uc.GetByID(context.Background(), salesOf("empresa-a"), "nada")

	var cross *domain.CrossTenantError
	assert.True(t, errors.As(errAjeno, &cross))
	assert.ErrorIs(t, errInexistente, domain.ErrNotFound)
}
