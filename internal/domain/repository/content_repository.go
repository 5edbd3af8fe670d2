package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// ContentFilter filtros adicionales de listado de contenidos.
type ContentFilter struct {
	Status     string // vacío = todos
	CategoryID string
}

// ContentRepository acceso a contenidos del CMS.
type ContentRepository interface {
	Create(ctx context.Context, c *entity.Content) error
	GetByID(ctx context.Context, id string) (*entity.Content, error)
	// GetBySlug resuelve por slug dentro de una empresa (los slugs son únicos
	// por empresa, no globales).
	GetBySlug(ctx context.Context, companyID, slug string) (*entity.Content, error)
	SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec, filter ContentFilter) (*query.Page[entity.Content], error)
	Update(ctx context.Context, c *entity.Content) error
	Delete(ctx context.Context, id string) error
}
