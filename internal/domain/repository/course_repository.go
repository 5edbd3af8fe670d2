package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// CourseRepository acceso a cursos y sus categorías.
type CourseRepository interface {
	Create(ctx context.Context, c *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	GetBySlug(ctx context.Context, companyID, slug string) (*entity.Course, error)
	SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Course], error)
	// ListPublished lista solo cursos publicados de una empresa, para la
	// lectura pública sin token.
	ListPublished(ctx context.Context, companyID string, spec query.Spec) (*query.Page[entity.Course], error)
	Update(ctx context.Context, c *entity.Course) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *entity.CourseCategory) error
	GetCategoryByID(ctx context.Context, id string) (*entity.CourseCategory, error)
	ListCategories(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.CourseCategory], error)
	UpdateCategory(ctx context.Context, c *entity.CourseCategory) error
	DeleteCategory(ctx context.Context, id string) error
}
