package entity

import "time"

// Template plantilla reutilizable de maquetación de contenidos.
type Template struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Structure   string // JSON de bloques
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
