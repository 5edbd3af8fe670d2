package usecase

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// ReportGenerator genera el reporte del pipeline en PDF.
type ReportGenerator interface {
	GeneratePipelineReport(ctx context.Context, companyName string, stages []entity.PipelineStage) ([]byte, error)
}

// ReportUseCase reportes agregados del pipeline de ventas, acotados a la
// visibilidad del caller.
type ReportUseCase struct {
	leads     repository.LeadRepository
	companies repository.CompanyRepository
	generator ReportGenerator
	access    *Access
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	leads repository.LeadRepository,
	companies repository.CompanyRepository,
	generator ReportGenerator,
	access *Access,
) *ReportUseCase {
	return &ReportUseCase{leads: leads, companies: companies, generator: generator, access: access}
}

// Pipeline devuelve el resumen por etapa, con las etapas vacías en cero.
func (uc *ReportUseCase) Pipeline(ctx context.Context, c tenant.Caller) (*dto.PipelineReportResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindLead, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	stages, err := uc.leads.PipelineSummary(ctx, scope)
	if err != nil {
		return nil, err
	}
	return dto.ToPipelineReportResponse(stages), nil
}

// PipelinePDF genera el reporte del pipeline en PDF y devuelve sus bytes.
func (uc *ReportUseCase) PipelinePDF(ctx context.Context, c tenant.Caller) ([]byte, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindLead, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	stages, err := uc.leads.PipelineSummary(ctx, scope)
	if err != nil {
		return nil, err
	}
	companyName := ""
	if c.CompanyID != "" {
		company, err := uc.companies.GetByID(ctx, c.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			companyName = company.Name
		}
	}
	return uc.generator.GeneratePipelineReport(ctx, companyName, stages)
}
