package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateContactRequest entrada para crear un contacto.
type CreateContactRequest struct {
	ClientID  string `json:"client_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email" validate:"required,email"`
	Telephone string `json:"telephone"`
	Fonction  string `json:"fonction"`
}

// UpdateContactRequest entrada para actualizar un contacto.
type UpdateContactRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Prenom    *string `json:"prenom"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telephone *string `json:"telephone"`
	Fonction  *string `json:"fonction"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Prenom    string    `json:"prenom"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone"`
	Fonction  string    `json:"fonction"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactListResponse sobre de listado de contactos.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	PageMeta
}

// ToContactResponse mapea la entidad a su DTO.
func ToContactResponse(c *entity.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Name:      c.Name,
		Prenom:    c.Prenom,
		Email:     c.Email,
		Telephone: c.Telephone,
		Fonction:  c.Fonction,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
