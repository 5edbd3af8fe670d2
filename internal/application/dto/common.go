package dto

import "github.com/tu-usuario/crm-suite/internal/domain/query"

// PageQuery parámetros de paginación y búsqueda de los listados.
type PageQuery struct {
	Page   int    `query:"page" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=100"`
	Search string `query:"search"`
}

// ToSpec convierte a la especificación de dominio aplicando defaults.
func (p PageQuery) ToSpec() query.Spec {
	return query.Spec{Page: p.Page, Limit: p.Limit, Search: p.Search}.Normalize()
}

// PageMeta metadatos del sobre de resultados. Se embebe en cada respuesta de
// listado junto al arreglo con nombre propio de la entidad.
type PageMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// Meta construye los metadatos desde el sobre de dominio.
func Meta[T any](p *query.Page[T]) PageMeta {
	return PageMeta{Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
