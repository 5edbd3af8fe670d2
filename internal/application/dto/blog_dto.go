package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateBlogRequest entrada para crear una entrada de blog.
type CreateBlogRequest struct {
	CompanyID  string `json:"company_id"` // solo super_admin puede fijarlo
	CategoryID string `json:"category_id"`
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Slug       string `json:"slug"`
	Body       string `json:"body"`
	Excerpt    string `json:"excerpt"`
	CoverURL   string `json:"cover_url"`
	Published  bool   `json:"published"`
}

// UpdateBlogRequest entrada para actualizar una entrada de blog.
type UpdateBlogRequest struct {
	CategoryID *string `json:"category_id"`
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	Slug       *string `json:"slug"`
	Body       *string `json:"body"`
	Excerpt    *string `json:"excerpt"`
	CoverURL   *string `json:"cover_url"`
	Published  *bool   `json:"published"`
}

// BlogResponse salida de una entrada de blog.
type BlogResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	CategoryID  string     `json:"category_id,omitempty"`
	AuthorID    string     `json:"author_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body,omitempty"`
	Excerpt     string     `json:"excerpt"`
	CoverURL    string     `json:"cover_url"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BlogListResponse sobre de listado de entradas de blog.
type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	PageMeta
}

// ToBlogResponse mapea la entidad a su DTO.
func ToBlogResponse(b *entity.Blog) *BlogResponse {
	if b == nil {
		return nil
	}
	out := &BlogResponse{
		ID:         b.ID,
		CompanyID:  b.CompanyID,
		CategoryID: b.CategoryID,
		AuthorID:   b.AuthorID,
		Title:      b.Title,
		Slug:       b.Slug,
		Body:       b.Body,
		Excerpt:    b.Excerpt,
		CoverURL:   b.CoverURL,
		Published:  b.Published,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if !b.PublishedAt.IsZero() {
		t := b.PublishedAt
		out.PublishedAt = &t
	}
	return out
}
