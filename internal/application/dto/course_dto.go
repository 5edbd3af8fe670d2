package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateCourseRequest entrada para crear un curso.
type CreateCourseRequest struct {
	CompanyID   string          `json:"company_id"` // solo super_admin puede fijarlo
	CategoryID  string          `json:"category_id"`
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	CoverURL    string          `json:"cover_url"`
	Price       decimal.Decimal `json:"price"`
	Published   bool            `json:"published"`
}

// UpdateCourseRequest entrada para actualizar un curso.
type UpdateCourseRequest struct {
	CategoryID  *string          `json:"category_id"`
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	CoverURL    *string          `json:"cover_url"`
	Price       *decimal.Decimal `json:"price"`
	Published   *bool            `json:"published"`
}

// CourseResponse salida de un curso.
type CourseResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CategoryID  string          `json:"category_id,omitempty"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	CoverURL    string          `json:"cover_url"`
	Price       decimal.Decimal `json:"price"`
	Published   bool            `json:"published"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CourseListResponse sobre de listado de cursos.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	PageMeta
}

// ToCourseResponse mapea la entidad a su DTO.
func ToCourseResponse(c *entity.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	return &CourseResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		CategoryID:  c.CategoryID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		CoverURL:    c.CoverURL,
		Price:       c.Price,
		Published:   c.Published,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
