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
	"github.com/tu-usuario/crm-suite/pkg/slug"
)

// CategoryUseCase casos de uso para categorías de contenido.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	access *Access
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, access *Access) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, access: access}
}

// Create crea una categoría en la empresa del caller.
func (uc *CategoryUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Ensure(slug.Make(in.Slug), in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.repo.SlugExists(ctx, companyID, s, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	category := &entity.Category{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// GetByID obtiene una categoría autorizando por empresa.
func (uc *CategoryUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCategory, id, tenant.OpRead); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCategoryResponse(category), nil
}

// List lista las categorías visibles.
func (uc *CategoryUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.CategoryListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindCategory, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToCategoryResponse(&page.Data[i]))
	}
	return &dto.CategoryListResponse{Categories: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCategory, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Slug != nil {
		s := slug.Ensure(slug.Make(*in.Slug), category.Name)
		if s != category.Slug {
			taken, err := uc.repo.SlugExists(ctx, category.CompanyID, s, category.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrDuplicate
			}
			category.Slug = s
		}
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCategory, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
