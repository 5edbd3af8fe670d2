package entity

import "time"

// Tipos de interacción.
var InteractionTypes = []string{"call", "email", "meeting"}

// ValidInteractionType indica si s es un tipo conocido.
func ValidInteractionType(s string) bool {
	for _, v := range InteractionTypes {
		if v == s {
			return true
		}
	}
	return false
}

// Interaction toque comercial sobre un lead.
type Interaction struct {
	ID              string
	LeadID          string
	TypeInteraction string // call, email, meeting
	DateInteraction time.Time
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InteractionContact asociación M:N entre interacciones y contactos.
type InteractionContact struct {
	InteractionID string
	ContactID     string
	CreatedAt     time.Time
}
