package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	CompanyID     string          `json:"company_id"` // solo super_admin puede fijarlo
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	MarketSegment string          `json:"market_segment"`
	SIREN         string          `json:"siren"`
	SIRET         string          `json:"siret"`
	CodePostal    string          `json:"code_postal"`
	CodeNAF       string          `json:"code_naf"`
	Revenue       decimal.Decimal `json:"revenue"`
	EBIT          decimal.Decimal `json:"ebit"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	PDM           decimal.Decimal `json:"pdm"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	MarketSegment *string          `json:"market_segment"`
	SIREN         *string          `json:"siren"`
	SIRET         *string          `json:"siret"`
	CodePostal    *string          `json:"code_postal"`
	CodeNAF       *string          `json:"code_naf"`
	Revenue       *decimal.Decimal `json:"revenue"`
	EBIT          *decimal.Decimal `json:"ebit"`
	Latitude      *float64         `json:"latitude"`
	Longitude     *float64         `json:"longitude"`
	PDM           *decimal.Decimal `json:"pdm"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	MarketSegment string          `json:"market_segment"`
	SIREN         string          `json:"siren"`
	SIRET         string          `json:"siret"`
	CodePostal    string          `json:"code_postal"`
	CodeNAF       string          `json:"code_naf"`
	Revenue       decimal.Decimal `json:"revenue"`
	EBIT          decimal.Decimal `json:"ebit"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	PDM           decimal.Decimal `json:"pdm"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ClientListResponse sobre de listado de clientes.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	PageMeta
}

// ToClientResponse mapea la entidad a su DTO.
func ToClientResponse(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Description:   c.Description,
		MarketSegment: c.MarketSegment,
		SIREN:         c.SIREN,
		SIRET:         c.SIRET,
		CodePostal:    c.CodePostal,
		CodeNAF:       c.CodeNAF,
		Revenue:       c.Revenue,
		EBIT:          c.EBIT,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		PDM:           c.PDM,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
