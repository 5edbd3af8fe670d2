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

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo   repository.ClientRepository
	access *Access
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, access *Access) *ClientUseCase {
	return &ClientUseCase{repo: repo, access: access}
}

// resolveCompany determina la empresa destino de una creación: los callers
// ligados a empresa siempre crean en la suya; super_admin debe indicarla.
func resolveCompany(c tenant.Caller, requested string) (string, error) {
	if c.Role == tenant.RoleSuperAdmin {
		if requested == "" {
			return "", domain.ErrInvalidInput
		}
		return requested, nil
	}
	if c.CompanyID == "" {
		return "", domain.ErrMissingTenant
	}
	return c.CompanyID, nil
}

// Create crea un cliente en la empresa del caller.
func (uc *ClientUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	client := &entity.Client{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		Description:   in.Description,
		MarketSegment: in.MarketSegment,
		SIREN:         in.SIREN,
		SIRET:         in.SIRET,
		CodePostal:    in.CodePostal,
		CodeNAF:       in.CodeNAF,
		Revenue:       in.Revenue,
		EBIT:          in.EBIT,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		PDM:           in.PDM,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return dto.ToClientResponse(client), nil
}

// GetByID obtiene un cliente autorizando por empresa.
func (uc *ClientUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.ClientResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindClient, id, tenant.OpRead); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToClientResponse(client), nil
}

// List lista los clientes visibles para el caller.
func (uc *ClientUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.ClientListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindClient, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToClientResponse(&page.Data[i]))
	}
	return &dto.ClientListResponse{Clients: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un cliente autorizando por empresa.
func (uc *ClientUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindClient, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Description != nil {
		client.Description = *in.Description
	}
	if in.MarketSegment != nil {
		client.MarketSegment = *in.MarketSegment
	}
	if in.SIREN != nil {
		client.SIREN = *in.SIREN
	}
	if in.SIRET != nil {
		client.SIRET = *in.SIRET
	}
	if in.CodePostal != nil {
		client.CodePostal = *in.CodePostal
	}
	if in.CodeNAF != nil {
		client.CodeNAF = *in.CodeNAF
	}
	if in.Revenue != nil {
		client.Revenue = *in.Revenue
	}
	if in.EBIT != nil {
		client.EBIT = *in.EBIT
	}
	if in.Latitude != nil {
		client.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		client.Longitude = *in.Longitude
	}
	if in.PDM != nil {
		client.PDM = *in.PDM
	}
	client.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return dto.ToClientResponse(client), nil
}

// Delete elimina un cliente autorizando por empresa.
func (uc *ClientUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindClient, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
