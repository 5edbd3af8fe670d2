package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateTemplateRequest entrada para crear una plantilla.
type CreateTemplateRequest struct {
	CompanyID   string `json:"company_id"` // solo super_admin puede fijarlo
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Structure   string `json:"structure"`
}

// UpdateTemplateRequest entrada para actualizar una plantilla.
type UpdateTemplateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Structure   *string `json:"structure"`
}

// TemplateResponse salida de una plantilla.
type TemplateResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Structure   string    `json:"structure"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TemplateListResponse sobre de listado de plantillas.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	PageMeta
}

// ToTemplateResponse mapea la entidad a su DTO.
func ToTemplateResponse(t *entity.Template) *TemplateResponse {
	if t == nil {
		return nil
	}
	return &TemplateResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		Name:        t.Name,
		Description: t.Description,
		Structure:   t.Structure,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
