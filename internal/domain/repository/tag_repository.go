package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// TagRepository acceso a etiquetas y a sus asociaciones con contenidos.
// Attach y Detach mantienen usage_count en la misma transacción que la fila
// de asociación.
type TagRepository interface {
	Create(ctx context.Context, t *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	GetBySlug(ctx context.Context, companyID, slug string) (*entity.Tag, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Tag], error)
	Update(ctx context.Context, t *entity.Tag) error
	Delete(ctx context.Context, id string) error

	// ByMinUsage devuelve las etiquetas con al menos min usos dentro del
	// alcance, de más a menos usada.
	ByMinUsage(ctx context.Context, scope *tenant.Scope, min int) ([]entity.Tag, error)

	Attach(ctx context.Context, contentID, tagID string) error
	Detach(ctx context.Context, contentID, tagID string) error
	TagsOf(ctx context.Context, contentID string) ([]entity.Tag, error)
	ContentsWith(ctx context.Context, tagID string, spec query.Spec) (*query.Page[entity.Content], error)
}
