package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// ClientRepository acceso a clientes.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Client], error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id string) error
}
