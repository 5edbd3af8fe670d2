package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateLeadRequest entrada para crear un lead.
type CreateLeadRequest struct {
	ClientID      string          `json:"client_id" validate:"required"`
	UserID        string          `json:"user_id"` // asignado; vacío = el caller
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Source        string          `json:"source"`
	Statut        string          `json:"statut"`
	ValeurEstimee decimal.Decimal `json:"valeur_estimee"`
}

// UpdateLeadRequest entrada para actualizar un lead. Un cambio de Statut
// genera un log de etapa en la misma transacción.
type UpdateLeadRequest struct {
	UserID        *string          `json:"user_id"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	Source        *string          `json:"source"`
	Statut        *string          `json:"statut"`
	ValeurEstimee *decimal.Decimal `json:"valeur_estimee"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Source        string          `json:"source"`
	Statut        string          `json:"statut"`
	ValeurEstimee decimal.Decimal `json:"valeur_estimee"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LeadListResponse sobre de listado de leads.
type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	PageMeta
}

// LeadStatusLogResponse una entrada del historial de etapas.
type LeadStatusLogResponse struct {
	ID             string    `json:"id"`
	LeadID         string    `json:"lead_id"`
	PreviousStatut string    `json:"previous_statut,omitempty"`
	NewStatut      string    `json:"new_statut"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
	DurationMs     int64     `json:"duration_ms"`
}

// ToLeadResponse mapea la entidad a su DTO.
func ToLeadResponse(l *entity.Lead) *LeadResponse {
	if l == nil {
		return nil
	}
	return &LeadResponse{
		ID:            l.ID,
		ClientID:      l.ClientID,
		UserID:        l.UserID,
		Name:          l.Name,
		Description:   l.Description,
		Source:        l.Source,
		Statut:        l.Statut,
		ValeurEstimee: l.ValeurEstimee,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ToLeadStatusLogResponse mapea una entrada del historial.
func ToLeadStatusLogResponse(l entity.LeadStatusLog) LeadStatusLogResponse {
	return LeadStatusLogResponse{
		ID:             l.ID,
		LeadID:         l.LeadID,
		PreviousStatut: l.PreviousStatut,
		NewStatut:      l.NewStatut,
		ChangedBy:      l.ChangedBy,
		ChangedAt:      l.ChangedAt,
		DurationMs:     l.Duration,
	}
}
