package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateContentRequest entrada para crear un contenido. Slug vacío se deriva
// del título.
type CreateContentRequest struct {
	CompanyID  string `json:"company_id"` // solo super_admin puede fijarlo
	CategoryID string `json:"category_id"`
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Slug       string `json:"slug"`
	Body       string `json:"body"`
	Excerpt    string `json:"excerpt"`
	CoverURL   string `json:"cover_url"`
	Status     string `json:"status"`
}

// UpdateContentRequest entrada para actualizar un contenido.
type UpdateContentRequest struct {
	CategoryID *string `json:"category_id"`
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	Slug       *string `json:"slug"`
	Body       *string `json:"body"`
	Excerpt    *string `json:"excerpt"`
	CoverURL   *string `json:"cover_url"`
	Status     *string `json:"status"`
}

// ContentListQuery filtros propios del listado de contenidos.
type ContentListQuery struct {
	PageQuery
	Status     string `query:"status"`
	CategoryID string `query:"category_id"`
}

// ContentResponse salida de un contenido.
type ContentResponse struct {
	ID          string        `json:"id"`
	CompanyID   string        `json:"company_id"`
	CategoryID  string        `json:"category_id,omitempty"`
	AuthorID    string        `json:"author_id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Body        string        `json:"body,omitempty"`
	Excerpt     string        `json:"excerpt"`
	CoverURL    string        `json:"cover_url"`
	Status      string        `json:"status"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	Tags        []TagResponse `json:"tags,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ContentListResponse sobre de listado de contenidos.
type ContentListResponse struct {
	Contents []ContentResponse `json:"contents"`
	PageMeta
}

// ToContentResponse mapea la entidad a su DTO.
func ToContentResponse(c *entity.Content) *ContentResponse {
	if c == nil {
		return nil
	}
	out := &ContentResponse{
		ID:         c.ID,
		CompanyID:  c.CompanyID,
		CategoryID: c.CategoryID,
		AuthorID:   c.AuthorID,
		Title:      c.Title,
		Slug:       c.Slug,
		Body:       c.Body,
		Excerpt:    c.Excerpt,
		CoverURL:   c.CoverURL,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if !c.PublishedAt.IsZero() {
		t := c.PublishedAt
		out.PublishedAt = &t
	}
	return out
}
