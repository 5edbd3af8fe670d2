package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CourseCategory taxonomía propia de los cursos.
type CourseCategory struct {
	ID          string
	CompanyID   string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Course curso publicable, con slug único por empresa.
type Course struct {
	ID          string
	CompanyID   string
	CategoryID  string // nullable
	Title       string
	Slug        string
	Description string
	CoverURL    string
	Price       decimal.Decimal
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
