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

// InteractionUseCase casos de uso para interacciones y sus contactos.
type InteractionUseCase struct {
	repo   repository.InteractionRepository
	access *Access
}

// NewInteractionUseCase construye el caso de uso.
func NewInteractionUseCase(repo repository.InteractionRepository, access *Access) *InteractionUseCase {
	return &InteractionUseCase{repo: repo, access: access}
}

// authorizeContacts verifica que cada contacto exista y pertenezca a la misma
// empresa que el lead de la interacción.
func (uc *InteractionUseCase) authorizeContacts(ctx context.Context, c tenant.Caller, leadCompany string, contactIDs []string) error {
	for _, contactID := range contactIDs {
		company, err := uc.access.Authorize(ctx, c, tenant.KindContact, contactID, tenant.OpRead)
		if err != nil {
			return err
		}
		if company != leadCompany {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Create crea una interacción bajo un lead visible, asociando los contactos
// indicados en la misma transacción.
func (uc *InteractionUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindLead, in.LeadID, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	if !entity.ValidInteractionType(in.TypeInteraction) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.authorizeContacts(ctx, c, company, in.ContactIDs); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	date := in.DateInteraction
	if date.IsZero() {
		date = now
	}
	interaction := &entity.Interaction{
		ID:              uuid.New().String(),
		LeadID:          in.LeadID,
		TypeInteraction: in.TypeInteraction,
		DateInteraction: date,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, interaction, in.ContactIDs); err != nil {
		return nil, err
	}
	return uc.hydrate(ctx, interaction)
}

// GetByID obtiene una interacción con sus contactos.
func (uc *InteractionUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.InteractionResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, id, tenant.OpRead); err != nil {
		return nil, err
	}
	interaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, domain.ErrNotFound
	}
	return uc.hydrate(ctx, interaction)
}

// List lista las interacciones visibles, opcionalmente filtradas por lead.
func (uc *InteractionUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery, leadID string) (*dto.InteractionListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindInteraction, tenant.ScopeOptions{ParentID: leadID})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.InteractionResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToInteractionResponse(&page.Data[i]))
	}
	return &dto.InteractionListResponse{Interactions: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una interacción. ContactIDs no nil reemplaza el conjunto
// de contactos asociados.
func (uc *InteractionUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateInteractionRequest) (*dto.InteractionResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, id, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	interaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interaction == nil {
		return nil, domain.ErrNotFound
	}
	if in.TypeInteraction != nil {
		if !entity.ValidInteractionType(*in.TypeInteraction) {
			return nil, domain.ErrInvalidInput
		}
		interaction.TypeInteraction = *in.TypeInteraction
	}
	if in.DateInteraction != nil {
		interaction.DateInteraction = *in.DateInteraction
	}
	if in.Description != nil {
		interaction.Description = *in.Description
	}
	interaction.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, interaction); err != nil {
		return nil, err
	}
	if in.ContactIDs != nil {
		if err := uc.authorizeContacts(ctx, c, company, in.ContactIDs); err != nil {
			return nil, err
		}
		if err := uc.repo.ReplaceContacts(ctx, id, in.ContactIDs); err != nil {
			return nil, err
		}
	}
	return uc.hydrate(ctx, interaction)
}

// AddContact asocia un contacto a la interacción. El contacto debe pertenecer
// a la misma empresa; repetirlo es un no-op.
func (uc *InteractionUseCase) AddContact(ctx context.Context, c tenant.Caller, interactionID, contactID string) error {
	company, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, interactionID, tenant.OpWrite)
	if err != nil {
		return err
	}
	if err := uc.authorizeContacts(ctx, c, company, []string{contactID}); err != nil {
		return err
	}
	contacts, err := uc.repo.ContactsOf(ctx, interactionID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(contacts)+1)
	for i := range contacts {
		if contacts[i].ID == contactID {
			return nil
		}
		ids = append(ids, contacts[i].ID)
	}
	ids = append(ids, contactID)
	return uc.repo.ReplaceContacts(ctx, interactionID, ids)
}

// RemoveContact quita un contacto de la interacción. Quitar uno no asociado es
// un no-op.
func (uc *InteractionUseCase) RemoveContact(ctx context.Context, c tenant.Caller, interactionID, contactID string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, interactionID, tenant.OpWrite); err != nil {
		return err
	}
	contacts, err := uc.repo.ContactsOf(ctx, interactionID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(contacts))
	found := false
	for i := range contacts {
		if contacts[i].ID == contactID {
			found = true
			continue
		}
		ids = append(ids, contacts[i].ID)
	}
	if !found {
		return nil
	}
	return uc.repo.ReplaceContacts(ctx, interactionID, ids)
}

// Delete elimina una interacción autorizando por la cadena.
func (uc *InteractionUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// hydrate completa la respuesta con los contactos asociados.
func (uc *InteractionUseCase) hydrate(ctx context.Context, i *entity.Interaction) (*dto.InteractionResponse, error) {
	out := dto.ToInteractionResponse(i)
	contacts, err := uc.repo.ContactsOf(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	out.Contacts = make([]dto.ContactResponse, 0, len(contacts))
	for idx := range contacts {
		out.Contacts = append(out.Contacts, *dto.ToContactResponse(&contacts[idx]))
	}
	return out, nil
}
