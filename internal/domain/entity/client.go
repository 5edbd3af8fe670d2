package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client cuenta comercial dentro de una empresa (hijo directo del tenant).
type Client struct {
	ID            string
	CompanyID     string
	Name          string
	Description   string
	MarketSegment string
	SIREN         string
	SIRET         string
	CodePostal    string
	CodeNAF       string
	Revenue       decimal.Decimal
	EBIT          decimal.Decimal
	Latitude      float64
	Longitude     float64
	PDM           decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
