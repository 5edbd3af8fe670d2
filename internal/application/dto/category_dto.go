package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría (de contenido, curso
// o blog; las tres comparten forma).
type CreateCategoryRequest struct {
	CompanyID   string `json:"company_id"` // solo super_admin puede fijarlo
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse sobre de listado de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	PageMeta
}

// ToCategoryResponse mapea la entidad a su DTO.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCourseCategoryResponse mapea una categoría de curso al DTO común.
func ToCourseCategoryResponse(c *entity.CourseCategory) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToBlogCategoryResponse mapea una categoría de blog al DTO común.
func ToBlogCategoryResponse(c *entity.BlogCategory) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
