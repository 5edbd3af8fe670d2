package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	SIREN      string          `json:"siren"`
	SIRET      string          `json:"siret"`
	CodePostal string          `json:"code_postal"`
	CodeNAF    string          `json:"code_naf"`
	Revenue    decimal.Decimal `json:"revenue"`
	EBIT       decimal.Decimal `json:"ebit"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	PDM        decimal.Decimal `json:"pdm"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SIREN      *string          `json:"siren"`
	SIRET      *string          `json:"siret"`
	CodePostal *string          `json:"code_postal"`
	CodeNAF    *string          `json:"code_naf"`
	Revenue    *decimal.Decimal `json:"revenue"`
	EBIT       *decimal.Decimal `json:"ebit"`
	Latitude   *float64         `json:"latitude"`
	Longitude  *float64         `json:"longitude"`
	PDM        *decimal.Decimal `json:"pdm"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SIREN      string          `json:"siren"`
	SIRET      string          `json:"siret"`
	CodePostal string          `json:"code_postal"`
	CodeNAF    string          `json:"code_naf"`
	Revenue    decimal.Decimal `json:"revenue"`
	EBIT       decimal.Decimal `json:"ebit"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	PDM        decimal.Decimal `json:"pdm"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CompanyListResponse sobre de listado de empresas.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	PageMeta
}

// ToCompanyResponse mapea la entidad a su DTO.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:         c.ID,
		Name:       c.Name,
		SIREN:      c.SIREN,
		SIRET:      c.SIRET,
		CodePostal: c.CodePostal,
		CodeNAF:    c.CodeNAF,
		Revenue:    c.Revenue,
		EBIT:       c.EBIT,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		PDM:        c.PDM,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
