package entity

import "time"

// User usuario del sistema. CompanyID vacío solo para super_admin.
type User struct {
	ID           string
	CompanyID    string // nullable: los super_admin no pertenecen a ninguna empresa
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // super_admin, admin, manager, sales, support, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
