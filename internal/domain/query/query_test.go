package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-suite/internal/domain/query"
)

func TestNormalize_Defaults(t *testing.T) {
	s := query.Spec{}.Normalize()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 10, s.Limit)

	s = query.Spec{Page: -3, Limit: 0}.Normalize()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 10, s.Limit)
}

func TestNormalize_AcotaLimit(t *testing.T) {
	s := query.Spec{Page: 2, Limit: 5000}.Normalize()
	assert.Equal(t, query.MaxLimit, s.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, query.Spec{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, query.Spec{Page: 3, Limit: 10}.Offset())
}

// 25 registros con limit por defecto: 10 por página y 3 páginas.
func TestNewPage_PagesCeil(t *testing.T) {
	s := query.Spec{}.Normalize()
	p := query.NewPage(make([]int, 10), 25, s)
	assert.Equal(t, 10, len(p.Data))
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.Pages)
}

// Página más allá del final: data vacía, totales intactos, nunca error.
func TestNewPage_PaginaFueraDeRango(t *testing.T) {
	s := query.Spec{Page: 4, Limit: 10}.Normalize()
	p := query.NewPage([]int(nil), 25, s)
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 4, p.Page)
}

func TestNewPage_TotalCero(t *testing.T) {
	p := query.NewPage([]string{}, 0, query.Spec{}.Normalize())
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Pages)
	assert.Empty(t, p.Data)
}
