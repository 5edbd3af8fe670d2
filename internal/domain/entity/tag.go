package entity

import "time"

// Tag etiqueta de contenidos. UsageCount se mantiene en la misma
// transacción que la asociación que lo modifica.
type Tag struct {
	ID         string
	CompanyID  string
	Name       string
	Slug       string
	UsageCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContentTag asociación M:N entre contenidos y etiquetas.
type ContentTag struct {
	ContentID string
	TagID     string
	CreatedAt time.Time
}
