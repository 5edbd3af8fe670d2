package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// UserRepository acceso a usuarios.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List lista usuarios dentro del alcance; role vacío no filtra.
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec, role string) (*query.Page[entity.User], error)
	// CountByCompany cuenta los usuarios de una empresa.
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
