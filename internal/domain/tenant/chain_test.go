package tenant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// fakeRefStore resuelve FKs padre desde mapas en memoria.
type fakeRefStore struct {
	parents map[tenant.Kind]map[string]string // kind -> id -> parentID
}

func (f *fakeRefStore) ParentID(_ context.Context, kind tenant.Kind, id string) (string, error) {
	p, ok := f.parents[kind][id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return p, nil
}

// Cadena de ejemplo: T1 → I1 → L1 → C1 → empresa-a.
func chainStore() *fakeRefStore {
	return &fakeRefStore{parents: map[tenant.Kind]map[string]string{
		tenant.KindClient:      {"C1": "empresa-a"},
		tenant.KindLead:        {"L1": "C1"},
		tenant.KindInteraction: {"I1": "L1"},
		tenant.KindTask:        {"T1": "I1"},
		tenant.KindMedia:       {"M1": "empresa-a"},
	}}
}

func TestCompanyOf_ProfundidadCompleta(t *testing.T) {
	r := tenant.NewResolver(chainStore())

	company, err := r.CompanyOf(context.Background(), tenant.KindTask, "T1")
	require.NoError(t, err)
	assert.Equal(t, "empresa-a", company)
}

func TestCompanyOf_NivelesIntermedios(t *testing.T) {
	r := tenant.NewResolver(chainStore())
	ctx := context.Background()

	for kind, id := range map[tenant.Kind]string{
		tenant.KindClient:      "C1",
		tenant.KindLead:        "L1",
		tenant.KindInteraction: "I1",
		tenant.KindMedia:       "M1",
	} {
		company, err := r.CompanyOf(ctx, kind, id)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, "empresa-a", company)
	}
}

func TestCompanyOf_RegistroInexistente(t *testing.T) {
	r := tenant.NewResolver(chainStore())

	_, err := r.CompanyOf(context.Background(), tenant.KindTask, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// el registro objetivo inexistente NO se reporta como referencia rota
	var bre *domain.BrokenReferenceError
	assert.False(t, errors.As(err, &bre))
}

func TestCompanyOf_ReferenciaRota(t *testing.T) {
	store := chainStore()
	delete(store.parents[tenant.KindLead], "L1") // rompe la cadena en el lead
	r := tenant.NewResolver(store)

	_, err := r.CompanyOf(context.Background(), tenant.KindTask, "T1")

	var bre *domain.BrokenReferenceError
	require.True(t, errors.As(err, &bre))
	assert.Equal(t, "lead", bre.Kind)
	assert.Equal(t, "L1", bre.ID)
	// para el cliente equivale a no-encontrado
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyOf_FKNullable(t *testing.T) {
	store := &fakeRefStore{parents: map[tenant.Kind]map[string]string{
		tenant.KindUser: {"u-root": ""}, // super_admin sin empresa
	}}
	r := tenant.NewResolver(store)

	company, err := r.CompanyOf(context.Background(), tenant.KindUser, "u-root")
	require.NoError(t, err)
	assert.Equal(t, "", company)
}
