package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company raíz de la multi-tenencia: todo registro del sistema es alcanzable
// desde una empresa por cero o más saltos de FK.
type Company struct {
	ID         string
	Name       string
	SIREN      string
	SIRET      string
	CodePostal string
	CodeNAF    string
	Revenue    decimal.Decimal // chiffre d'affaires
	EBIT       decimal.Decimal
	Latitude   float64
	Longitude  float64
	PDM        decimal.Decimal // parts de marché
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
