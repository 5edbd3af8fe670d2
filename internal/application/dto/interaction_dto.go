package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateInteractionRequest entrada para crear una interacción.
type CreateInteractionRequest struct {
	LeadID          string    `json:"lead_id" validate:"required"`
	TypeInteraction string    `json:"type_interaction" validate:"required"`
	DateInteraction time.Time `json:"date_interaction"`
	Description     string    `json:"description"`
	ContactIDs      []string  `json:"contact_ids"`
}

// UpdateInteractionRequest entrada para actualizar una interacción.
// ContactIDs no nil reemplaza el conjunto de contactos asociados.
type UpdateInteractionRequest struct {
	TypeInteraction *string    `json:"type_interaction"`
	DateInteraction *time.Time `json:"date_interaction"`
	Description     *string    `json:"description"`
	ContactIDs      []string   `json:"contact_ids"`
}

// InteractionResponse salida de una interacción con sus contactos.
type InteractionResponse struct {
	ID              string            `json:"id"`
	LeadID          string            `json:"lead_id"`
	TypeInteraction string            `json:"type_interaction"`
	DateInteraction time.Time         `json:"date_interaction"`
	Description     string            `json:"description"`
	Contacts        []ContactResponse `json:"contacts,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// InteractionListResponse sobre de listado de interacciones.
type InteractionListResponse struct {
	Interactions []InteractionResponse `json:"interactions"`
	PageMeta
}

// ToInteractionResponse mapea la entidad a su DTO.
func ToInteractionResponse(i *entity.Interaction) *InteractionResponse {
	if i == nil {
		return nil
	}
	return &InteractionResponse{
		ID:              i.ID,
		LeadID:          i.LeadID,
		TypeInteraction: i.TypeInteraction,
		DateInteraction: i.DateInteraction,
		Description:     i.Description,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
