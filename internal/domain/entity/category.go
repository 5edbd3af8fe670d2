package entity

import "time"

// Category taxonomía de contenidos, con slug único por empresa.
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
