package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// MediaRepository acceso a los metadatos de archivos subidos.
type MediaRepository interface {
	Create(ctx context.Context, m *entity.Media) error
	GetByID(ctx context.Context, id string) (*entity.Media, error)
	// List lista dentro del alcance; mediaType vacío no filtra.
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec, mediaType string) (*query.Page[entity.Media], error)
	Update(ctx context.Context, m *entity.Media) error
	Delete(ctx context.Context, id string) error
}
