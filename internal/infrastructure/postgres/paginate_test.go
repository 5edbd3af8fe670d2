package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

func TestLikePattern_TerminoLiteral(t *testing.T) {
	assert.Equal(t, "%acme%", likePattern("acme"))
}

func TestLikePattern_EscapaMetacaracteres(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{`50%`, `%50\%%`},
		{`a_b`, `%a\_b%`},
		{`c:\tmp`, `%c:\\tmp%`},
		{`100%_\`, `%100\%\_\\%`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, likePattern(tc.term), "término %q", tc.term)
	}
}

func TestListQuery_WhereNumeraPlaceholders(t *testing.T) {
	lq := listQuery{}
	lq.where("company_id = $%d", "empresa-a")
	lq.where("status = $%d", "active")

	assert.Equal(t, " WHERE company_id = $1 AND status = $2", lq.whereSQL())
	assert.Equal(t, []any{"empresa-a", "active"}, lq.args)
}

func TestListQuery_SinCondiciones(t *testing.T) {
	lq := listQuery{}
	assert.Empty(t, lq.whereSQL())
}

func TestListQuery_ScopeRestringePorPadre(t *testing.T) {
	lq := listQuery{}
	lq.scope(&tenant.Scope{Column: "client_id", IDs: []string{"c1", "c2"}})

	assert.Equal(t, " WHERE client_id = ANY($1)", lq.whereSQL())
	assert.Equal(t, []any{[]string{"c1", "c2"}}, lq.args)
}

// Un scope sin IDs debe producir un filtro que no deja pasar ninguna fila,
// nunca un listado sin restricción.
func TestListQuery_ScopeVacioNoDevuelveFilas(t *testing.T) {
	lq := listQuery{}
	lq.scope(&tenant.Scope{Column: "client_id"})

	assert.Equal(t, " WHERE client_id = ANY($1)", lq.whereSQL())
	assert.Equal(t, []any{[]string{}}, lq.args)
}

func TestListQuery_ScopeSuperAdminSinRestriccion(t *testing.T) {
	lq := listQuery{}
	lq.scope(&tenant.Scope{All: true})

	assert.Empty(t, lq.whereSQL())
	assert.Empty(t, lq.args)
}

func TestListQuery_ScopePersonalIntersecta(t *testing.T) {
	lq := listQuery{}
	lq.scope(&tenant.Scope{
		Column:      "client_id",
		IDs:         []string{"c1"},
		OwnerColumn: "user_id",
		OwnerID:     "u1",
	})

	assert.Equal(t, " WHERE client_id = ANY($1) AND user_id = $2", lq.whereSQL())
}

func TestListQuery_SearchGeneraOrDeILIKE(t *testing.T) {
	lq := listQuery{searchCols: []string{"name", "email"}}
	lq.where("company_id = $%d", "empresa-a")
	lq.search("dupont")

	assert.Equal(t,
		" WHERE company_id = $1 AND (name ILIKE $2 OR email ILIKE $2)",
		lq.whereSQL())
	assert.Equal(t, []any{"empresa-a", "%dupont%"}, lq.args)
}

func TestListQuery_SearchSinTerminoNoAgregaNada(t *testing.T) {
	lq := listQuery{searchCols: []string{"name"}}
	lq.search("")
	assert.Empty(t, lq.conds)

	sinCols := listQuery{}
	sinCols.search("algo")
	assert.Empty(t, sinCols.conds)
}
