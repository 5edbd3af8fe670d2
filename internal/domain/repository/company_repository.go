package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
)

// CompanyRepository acceso a empresas. Las operaciones GetByID devuelven
// (nil, nil) cuando el registro no existe; el caso de uso decide el error.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, spec query.Spec) (*query.Page[entity.Company], error)
	Update(ctx context.Context, c *entity.Company) error
	Delete(ctx context.Context, id string) error
}
