package entity

import "time"

// Contact persona de contacto de un cliente.
type Contact struct {
	ID        string
	ClientID  string
	Name      string
	Prenom    string
	Email     string // único global
	Telephone string
	Fonction  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
