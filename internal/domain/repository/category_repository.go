package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// CategoryRepository acceso a categorías de contenido.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Category], error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}
