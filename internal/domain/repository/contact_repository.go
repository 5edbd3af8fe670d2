package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// ContactRepository acceso a contactos.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	GetByEmail(ctx context.Context, email string) (*entity.Contact, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Contact], error)
	Update(ctx context.Context, c *entity.Contact) error
	Delete(ctx context.Context, id string) error
}
