package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateTagRequest entrada para crear una etiqueta.
type CreateTagRequest struct {
	CompanyID string `json:"company_id"` // solo super_admin puede fijarlo
	Name      string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTagRequest entrada para renombrar una etiqueta.
type UpdateTagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// TagResponse salida de una etiqueta.
type TagResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TagListResponse sobre de listado de etiquetas.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
	PageMeta
}

// ToTagResponse mapea la entidad a su DTO.
func ToTagResponse(t *entity.Tag) *TagResponse {
	if t == nil {
		return nil
	}
	return &TagResponse{
		ID:         t.ID,
		CompanyID:  t.CompanyID,
		Name:       t.Name,
		Slug:       t.Slug,
		UsageCount: t.UsageCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
