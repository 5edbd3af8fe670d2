package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// BlogRepository acceso a entradas de blog y sus categorías.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	GetBySlug(ctx context.Context, companyID, slug string) (*entity.Blog, error)
	SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Blog], error)
	// ListPublished lista solo entradas publicadas de una empresa, para la
	// lectura pública sin token.
	ListPublished(ctx context.Context, companyID string, spec query.Spec) (*query.Page[entity.Blog], error)
	Update(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *entity.BlogCategory) error
	GetCategoryByID(ctx context.Context, id string) (*entity.BlogCategory, error)
	ListCategories(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.BlogCategory], error)
	UpdateCategory(ctx context.Context, c *entity.BlogCategory) error
	DeleteCategory(ctx context.Context, id string) error
}
