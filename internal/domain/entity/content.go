package entity

import "time"

// Estados de publicación de un contenido.
var ContentStatuses = []string{"draft", "published", "archived"}

// ValidContentStatus indica si s es un estado conocido.
func ValidContentStatus(s string) bool {
	for _, v := range ContentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Content pieza editorial del CMS. El slug es único por empresa.
type Content struct {
	ID          string
	CompanyID   string
	CategoryID  string // nullable
	AuthorID    string
	Title       string
	Slug        string
	Body        string
	Excerpt     string
	CoverURL    string
	Status      string // draft, published, archived
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
