package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// fakeIDStore recolecta hijos por nivel desde registros en memoria.
type fakeIDStore struct {
	children map[tenant.Kind][]childRow // kind -> filas (id, parentID)
}

type childRow struct{ id, parent string }

func (f *fakeIDStore) ChildIDs(_ context.Context, kind tenant.Kind, parentIDs []string) ([]string, error) {
	allowed := make(map[string]bool, len(parentIDs))
	for _, p := range parentIDs {
		allowed[p] = true
	}
	var out []string
	for _, row := range f.children[kind] {
		if allowed[row.parent] {
			out = append(out, row.id)
		}
	}
	return out, nil
}

// Escenario del spec: empresa A con clientes {C1, C2}; C1 tiene lead L1;
// L1 tiene interacción I1; I1 tiene tareas {T1, T2}. Empresa B sin clientes.
func scenario() (*tenant.Resolver, *fakeIDStore) {
	refs := &fakeRefStore{parents: map[tenant.Kind]map[string]string{
		tenant.KindClient:      {"C1": "empresa-a", "C2": "empresa-a", "CB": "empresa-b"},
		tenant.KindLead:        {"L1": "C1"},
		tenant.KindInteraction: {"I1": "L1"},
		tenant.KindTask:        {"T1": "I1", "T2": "I1"},
	}}
	ids := &fakeIDStore{children: map[tenant.Kind][]childRow{
		tenant.KindClient:      {{"C1", "empresa-a"}, {"C2", "empresa-a"}, {"CB", "empresa-b"}},
		tenant.KindLead:        {{"L1", "C1"}},
		tenant.KindInteraction: {{"I1", "L1"}},
		tenant.KindTask:        {{"T1", "I1"}, {"T2", "I1"}},
	}}
	return tenant.NewResolver(refs), ids
}

func builder() *tenant.ScopeBuilder {
	r, ids := scenario()
	return tenant.NewScopeBuilder(r, ids)
}

func TestScope_SuperAdminSinRestriccion(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "root", Role: tenant.RoleSuperAdmin}

	s, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{})
	require.NoError(t, err)
	assert.True(t, s.All)
}

// Caller sales de empresa A listando tareas: el filtro desciende
// empresa → clientes → leads → interacciones y restringe interaction_id.
func TestScope_DescensoHastaTareas(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}

	s, err := b.Scope(context.Background(), c, tenant.KindTask, tenant.ScopeOptions{})
	require.NoError(t, err)
	assert.False(t, s.All)
	assert.Equal(t, "interaction_id", s.Column)
	assert.Equal(t, []string{"I1"}, s.IDs)
}

// Misma lista desde empresa B: conjunto vacío, no un error.
func TestScope_EmpresaSinCadena(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u2", Role: tenant.RoleSales, CompanyID: "empresa-b"}

	s, err := b.Scope(context.Background(), c, tenant.KindTask, tenant.ScopeOptions{})
	require.NoError(t, err)
	assert.False(t, s.All)
	assert.Empty(t, s.IDs)
}

func TestScope_EntidadDirecta(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleAdmin, CompanyID: "empresa-a"}

	s, err := b.Scope(context.Background(), c, tenant.KindClient, tenant.ScopeOptions{})
	require.NoError(t, err)
	assert.Equal(t, "company_id", s.Column)
	assert.Equal(t, []string{"empresa-a"}, s.IDs)
}

func TestScope_RolSinEmpresa(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleManager}

	_, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

// Padre explícito de la propia empresa: reemplaza el descenso por ID-set.
func TestScope_PadreExplicitoPropio(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}

	s, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{ParentID: "C1"})
	require.NoError(t, err)
	assert.Equal(t, "client_id", s.Column)
	assert.Equal(t, []string{"C1"}, s.IDs)
}

// Padre explícito de OTRA empresa: se rechaza antes de listar, con el mismo
// error de cruce de empresa que un acceso directo.
func TestScopedList_ExplicitParentOtherTenant(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}

	_, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{ParentID: "CB"})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

// Padre explícito inexistente: mismo trato externo que el caso anterior
// tras el mapeo HTTP (no encontrado), aquí ErrNotFound.
func TestScope_PadreExplicitoInexistente(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}

	_, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// super_admin con padre explícito: filtra por el padre sin validar empresa.
func TestScope_SuperAdminConPadreExplicito(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "root", Role: tenant.RoleSuperAdmin}

	s, err := b.Scope(context.Background(), c, tenant.KindLead, tenant.ScopeOptions{ParentID: "CB"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CB"}, s.IDs)
}

func TestScope_FiltroPersonal(t *testing.T) {
	b := builder()
	c := tenant.Caller{ID: "u1", Role: tenant.RoleSales, CompanyID: "empresa-a"}

	s, err := b.Scope(context.Background(), c, tenant.KindTask, tenant.ScopeOptions{
		OwnerColumn: "assigned_to",
		Personal:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "assigned_to", s.OwnerColumn)
	assert.Equal(t, "u1", s.OwnerID)
}
