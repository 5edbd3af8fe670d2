package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// ContactUseCase casos de uso CRUD para contactos.
type ContactUseCase struct {
	repo   repository.ContactRepository
	access *Access
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository, access *Access) *ContactUseCase {
	return &ContactUseCase{repo: repo, access: access}
}

// Create crea un contacto bajo un cliente de la empresa del caller.
func (uc *ContactUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	// Autorizar contra el padre: un client_id ajeno equivale a inexistente.
	if _, err := uc.access.Authorize(ctx, c, tenant.KindClient, in.ClientID, tenant.OpWrite); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now().UTC()
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Name:      in.Name,
		Prenom:    in.Prenom,
		Email:     in.Email,
		Telephone: in.Telephone,
		Fonction:  in.Fonction,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

// GetByID obtiene un contacto autorizando por la cadena de pertenencia.
func (uc *ContactUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.ContactResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContact, id, tenant.OpRead); err != nil {
		return nil, err
	}
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToContactResponse(contact), nil
}

// List lista los contactos visibles, opcionalmente filtrados por cliente.
func (uc *ContactUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery, clientID string) (*dto.ContactListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindContact, tenant.ScopeOptions{ParentID: clientID})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToContactResponse(&page.Data[i]))
	}
	return &dto.ContactListResponse{Contacts: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un contacto autorizando por la cadena.
func (uc *ContactUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContact, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	contact, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Prenom != nil {
		contact.Prenom = *in.Prenom
	}
	if in.Email != nil && *in.Email != contact.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		contact.Email = *in.Email
	}
	if in.Telephone != nil {
		contact.Telephone = *in.Telephone
	}
	if in.Fonction != nil {
		contact.Fonction = *in.Fonction
	}
	contact.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return dto.ToContactResponse(contact), nil
}

// Delete elimina un contacto autorizando por la cadena.
func (uc *ContactUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContact, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
