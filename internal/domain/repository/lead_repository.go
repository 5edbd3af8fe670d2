package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// LeadRepository acceso a leads y a su historial de etapas.
type LeadRepository interface {
	// Create inserta el lead y su log de etapa inicial en una transacción.
	Create(ctx context.Context, l *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Lead], error)
	Update(ctx context.Context, l *entity.Lead) error
	// UpdateWithStatusLog actualiza el lead y escribe el log del cambio de
	// etapa en la misma transacción: o persisten ambos o ninguno.
	UpdateWithStatusLog(ctx context.Context, l *entity.Lead, log *entity.LeadStatusLog) error
	Delete(ctx context.Context, id string) error

	StatusLogs(ctx context.Context, leadID string) ([]entity.LeadStatusLog, error)
	// PipelineSummary agrega conteo y valor estimado por etapa dentro del
	// alcance de visibilidad del caller.
	PipelineSummary(ctx context.Context, scope *tenant.Scope) ([]entity.PipelineStage, error)
}
