package entity

import "github.com/shopspring/decimal"

// PipelineStage agregado por etapa del pipeline para reporting.
type PipelineStage struct {
	Statut      string
	Count       int
	TotalValeur decimal.Decimal
}
