package entity

import "time"

// BlogCategory taxonomía propia de las entradas de blog.
type BlogCategory struct {
	ID          string
	CompanyID   string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Blog entrada de blog, con slug único por empresa.
type Blog struct {
	ID          string
	CompanyID   string
	CategoryID  string // nullable
	AuthorID    string
	Title       string
	Slug        string
	Body        string
	Excerpt     string
	CoverURL    string
	Published   bool
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
