package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// TemplateRepository acceso a plantillas de contenido.
type TemplateRepository interface {
	Create(ctx context.Context, t *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Template], error)
	Update(ctx context.Context, t *entity.Template) error
	Delete(ctx context.Context, id string) error
}
