package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// PipelineStageResponse agregado de una etapa del pipeline.
type PipelineStageResponse struct {
	Statut      string          `json:"statut"`
	Count       int             `json:"count"`
	TotalValeur decimal.Decimal `json:"total_valeur"`
}

// PipelineReportResponse resumen del pipeline completo.
type PipelineReportResponse struct {
	Stages      []PipelineStageResponse `json:"stages"`
	TotalLeads  int                     `json:"total_leads"`
	TotalValeur decimal.Decimal         `json:"total_valeur"`
}

// ToPipelineReportResponse arma el resumen en orden de pipeline, con etapas
// vacías en cero.
func ToPipelineReportResponse(stages []entity.PipelineStage) *PipelineReportResponse {
	byStatut := make(map[string]entity.PipelineStage, len(stages))
	for _, s := range stages {
		byStatut[s.Statut] = s
	}
	out := &PipelineReportResponse{TotalValeur: decimal.Zero}
	for _, statut := range entity.LeadStatuts {
		s := byStatut[statut]
		out.Stages = append(out.Stages, PipelineStageResponse{
			Statut:      statut,
			Count:       s.Count,
			TotalValeur: s.TotalValeur,
		})
		out.TotalLeads += s.Count
		out.TotalValeur = out.TotalValeur.Add(s.TotalValeur)
	}
	return out
}
