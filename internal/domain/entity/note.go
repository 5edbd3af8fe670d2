package entity

import "time"

// Note anotación libre sobre un cliente.
type Note struct {
	ID        string
	ClientID  string
	Contenu   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
