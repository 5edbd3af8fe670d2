// Package query define la especificación de paginación/búsqueda y el sobre
// de resultados que comparten todos los listados de la API.
package query

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Spec parámetros de un listado, construidos por request y consumidos una vez.
type Spec struct {
	Page   int
	Limit  int
	Search string // término de búsqueda; substring case-insensitive
	Sort   string // "columna DIR"; cada caso de uso fija su default por entidad
}

// Normalize aplica los defaults: page=1 y limit=10 si vienen vacíos o no
// positivos, y acota limit al máximo.
func (s Spec) Normalize() Spec {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.Limit < 1 {
		s.Limit = DefaultLimit
	}
	if s.Limit > MaxLimit {
		s.Limit = MaxLimit
	}
	return s
}

// Offset devuelve el desplazamiento SQL equivalente a la página.
func (s Spec) Offset() int {
	return (s.Page - 1) * s.Limit
}

// Page sobre de resultados paginados.
// Invariantes: len(Data) <= Limit, len(Data) <= Total, Pages = ceil(Total/Limit).
// Una página más allá del final devuelve Data vacío con Total/Pages correctos.
type Page[T any] struct {
	Data  []T
	Total int
	Page  int
	Limit int
	Pages int
}

// NewPage construye el sobre a partir de los datos de la página y el total.
func NewPage[T any](data []T, total int, s Spec) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Data:  data,
		Total: total,
		Page:  s.Page,
		Limit: s.Limit,
		Pages: (total + s.Limit - 1) / s.Limit,
	}
}
