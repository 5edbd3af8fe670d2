package repository

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// InteractionRepository acceso a interacciones y sus contactos asociados.
type InteractionRepository interface {
	Create(ctx context.Context, i *entity.Interaction, contactIDs []string) error
	GetByID(ctx context.Context, id string) (*entity.Interaction, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Interaction], error)
	Update(ctx context.Context, i *entity.Interaction) error
	Delete(ctx context.Context, id string) error

	// ReplaceContacts reemplaza el conjunto de contactos asociados en una
	// transacción.
	ReplaceContacts(ctx context.Context, interactionID string, contactIDs []string) error
	ContactsOf(ctx context.Context, interactionID string) ([]entity.Contact, error)
}
