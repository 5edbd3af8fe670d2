package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateNoteRequest entrada para crear una nota.
type CreateNoteRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Contenu  string `json:"contenu" validate:"required"`
}

// UpdateNoteRequest entrada para actualizar una nota.
type UpdateNoteRequest struct {
	Contenu *string `json:"contenu"`
}

// NoteResponse salida de una nota.
type NoteResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Contenu   string    `json:"contenu"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse sobre de listado de notas.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	PageMeta
}

// ToNoteResponse mapea la entidad a su DTO.
func ToNoteResponse(n *entity.Note) *NoteResponse {
	if n == nil {
		return nil
	}
	return &NoteResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		Contenu:   n.Contenu,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
