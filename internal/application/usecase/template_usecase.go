package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// TemplateUseCase casos de uso para plantillas de contenido.
type TemplateUseCase struct {
	repo   repository.TemplateRepository
	access *Access
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository, access *Access) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, access: access}
}

// validStructure verifica que la estructura sea JSON bien formado.
func validStructure(s string) bool {
	if s == "" {
		return true
	}
	return json.Valid([]byte(s))
}

// Create crea una plantilla en la empresa del caller.
func (uc *TemplateUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !validStructure(in.Structure) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	template := &entity.Template{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Structure:   in.Structure,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, template); err != nil {
		return nil, err
	}
	return dto.ToTemplateResponse(template), nil
}

// GetByID obtiene una plantilla autorizando por empresa.
func (uc *TemplateUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.TemplateResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTemplate, id, tenant.OpRead); err != nil {
		return nil, err
	}
	template, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToTemplateResponse(template), nil
}

// List lista las plantillas visibles.
func (uc *TemplateUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.TemplateListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindTemplate, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToTemplateResponse(&page.Data[i]))
	}
	return &dto.TemplateListResponse{Templates: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una plantilla.
func (uc *TemplateUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTemplate, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	template, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		template.Name = *in.Name
	}
	if in.Description != nil {
		template.Description = *in.Description
	}
	if in.Structure != nil {
		if !validStructure(*in.Structure) {
			return nil, domain.ErrInvalidInput
		}
		template.Structure = *in.Structure
	}
	template.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, template); err != nil {
		return nil, err
	}
	return dto.ToTemplateResponse(template), nil
}

// Delete elimina una plantilla.
func (uc *TemplateUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTemplate, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
