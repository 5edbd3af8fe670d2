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

// LeadUseCase casos de uso del pipeline de ventas. Cada cambio de etapa deja
// un log de auditoría escrito en la misma transacción que el lead.
type LeadUseCase struct {
	repo   repository.LeadRepository
	access *Access
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository, access *Access) *LeadUseCase {
	return &LeadUseCase{repo: repo, access: access}
}

// Create crea un lead bajo un cliente visible. Asignar a otro usuario exige
// rol de administrador y el asignado debe pertenecer a la empresa del cliente;
// sin asignado explícito queda para el caller.
func (uc *LeadUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindClient, in.ClientID, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	userID := in.UserID
	if userID == "" {
		userID = c.ID
	}
	if userID != c.ID {
		if err := tenant.CanAssignOther(c); err != nil {
			return nil, err
		}
		if err := uc.access.authorizeAssignee(ctx, c, userID, company); err != nil {
			return nil, err
		}
	}
	statut := in.Statut
	if statut == "" {
		statut = entity.LeadStartToCall
	}
	if !entity.ValidLeadStatut(statut) {
		return nil, domain.ErrInvalidInput
	}
	if in.Source != "" && !entity.ValidLeadSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	lead := &entity.Lead{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		UserID:        userID,
		Name:          in.Name,
		Description:   in.Description,
		Source:        in.Source,
		Statut:        statut,
		ValeurEstimee: in.ValeurEstimee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return dto.ToLeadResponse(lead), nil
}

// GetByID obtiene un lead autorizando por la cadena de pertenencia.
func (uc *LeadUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.LeadResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindLead, id, tenant.OpRead); err != nil {
		return nil, err
	}
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToLeadResponse(lead), nil
}

// List lista los leads visibles. clientID filtra por cliente; mine restringe
// a los asignados al caller.
func (uc *LeadUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery, clientID string, mine bool) (*dto.LeadListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindLead, tenant.ScopeOptions{
		ParentID:    clientID,
		OwnerColumn: "user_id",
		Personal:    mine,
	})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToLeadResponse(&page.Data[i]))
	}
	return &dto.LeadListResponse{Leads: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un lead. Si cambia la etapa, el log del cambio se escribe
// en la misma transacción que el lead, con la duración de la etapa anterior.
func (uc *LeadUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindLead, id, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	previous := lead.Statut
	if in.UserID != nil && *in.UserID != lead.UserID {
		if *in.UserID != c.ID {
			if err := tenant.CanAssignOther(c); err != nil {
				return nil, err
			}
			if err := uc.access.authorizeAssignee(ctx, c, *in.UserID, company); err != nil {
				return nil, err
			}
		}
		lead.UserID = *in.UserID
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Description != nil {
		lead.Description = *in.Description
	}
	if in.Source != nil {
		if *in.Source != "" && !entity.ValidLeadSource(*in.Source) {
			return nil, domain.ErrInvalidInput
		}
		lead.Source = *in.Source
	}
	if in.Statut != nil {
		if !entity.ValidLeadStatut(*in.Statut) {
			return nil, domain.ErrInvalidInput
		}
		lead.Statut = *in.Statut
	}
	if in.ValeurEstimee != nil {
		lead.ValeurEstimee = *in.ValeurEstimee
	}
	now := time.Now().UTC()
	lead.UpdatedAt = now
	if lead.Statut == previous {
		if err := uc.repo.Update(ctx, lead); err != nil {
			return nil, err
		}
		return dto.ToLeadResponse(lead), nil
	}
	log := &entity.LeadStatusLog{
		ID:             uuid.New().String(),
		LeadID:         lead.ID,
		PreviousStatut: previous,
		NewStatut:      lead.Statut,
		ChangedBy:      c.ID,
		ChangedAt:      now,
		Duration:       uc.stageDuration(ctx, lead.ID, now),
	}
	if err := uc.repo.UpdateWithStatusLog(ctx, lead, log); err != nil {
		return nil, err
	}
	return dto.ToLeadResponse(lead), nil
}

// stageDuration calcula los milisegundos transcurridos desde el último cambio
// de etapa. Sin historial devuelve cero.
func (uc *LeadUseCase) stageDuration(ctx context.Context, leadID string, now time.Time) int64 {
	logs, err := uc.repo.StatusLogs(ctx, leadID)
	if err != nil || len(logs) == 0 {
		return 0
	}
	// Los logs llegan ordenados del más reciente al más antiguo.
	return now.Sub(logs[0].ChangedAt).Milliseconds()
}

// Delete elimina un lead autorizando por la cadena.
func (uc *LeadUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindLead, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// StatusLogs devuelve el historial de etapas de un lead, del más reciente al
// más antiguo.
func (uc *LeadUseCase) StatusLogs(ctx context.Context, c tenant.Caller, leadID string) ([]dto.LeadStatusLogResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindLead, leadID, tenant.OpRead); err != nil {
		return nil, err
	}
	logs, err := uc.repo.StatusLogs(ctx, leadID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadStatusLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ToLeadStatusLogResponse(l))
	}
	return out, nil
}
