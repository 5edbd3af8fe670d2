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

// BlogUseCase casos de uso de entradas de blog y sus categorías.
type BlogUseCase struct {
	repo   repository.BlogRepository
	access *Access
}

// NewBlogUseCase construye el caso de uso.
func NewBlogUseCase(repo repository.BlogRepository, access *Access) *BlogUseCase {
	return &BlogUseCase{repo: repo, access: access}
}

// Create crea una entrada de blog; el autor es el caller.
func (uc *BlogUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Ensure(slug.Make(in.Slug), in.Title)
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
	if in.CategoryID != "" {
		if _, err := uc.access.Authorize(ctx, c, tenant.KindBlogCategory, in.CategoryID, tenant.OpRead); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	blog := &entity.Blog{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CategoryID: in.CategoryID,
		AuthorID:   c.ID,
		Title:      in.Title,
		Slug:       s,
		Body:       in.Body,
		Excerpt:    in.Excerpt,
		CoverURL:   in.CoverURL,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Published {
		blog.PublishedAt = now
	}
	if err := uc.repo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return dto.ToBlogResponse(blog), nil
}

// GetByID obtiene una entrada de blog autorizando por empresa.
func (uc *BlogUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.BlogResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlog, id, tenant.OpRead); err != nil {
		return nil, err
	}
	blog, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToBlogResponse(blog), nil
}

// List lista las entradas de blog visibles.
func (uc *BlogUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.BlogListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindBlog, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BlogResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToBlogResponse(&page.Data[i]))
	}
	return &dto.BlogListResponse{Blogs: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una entrada de blog. La primera publicación fija
// published_at; despublicar no lo borra.
func (uc *BlogUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlog, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	blog, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		blog.Title = *in.Title
	}
	if in.Slug != nil {
		s := slug.Ensure(slug.Make(*in.Slug), blog.Title)
		if s != blog.Slug {
			taken, err := uc.repo.SlugExists(ctx, blog.CompanyID, s, blog.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrDuplicate
			}
			blog.Slug = s
		}
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			if _, err := uc.access.Authorize(ctx, c, tenant.KindBlogCategory, *in.CategoryID, tenant.OpRead); err != nil {
				return nil, err
			}
		}
		blog.CategoryID = *in.CategoryID
	}
	if in.Body != nil {
		blog.Body = *in.Body
	}
	if in.Excerpt != nil {
		blog.Excerpt = *in.Excerpt
	}
	if in.CoverURL != nil {
		blog.CoverURL = *in.CoverURL
	}
	if in.Published != nil {
		if *in.Published && blog.PublishedAt.IsZero() {
			blog.PublishedAt = time.Now().UTC()
		}
		blog.Published = *in.Published
	}
	blog.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return dto.ToBlogResponse(blog), nil
}

// Delete elimina una entrada de blog.
func (uc *BlogUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlog, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ── Categorías de blog ────────────────────────────────────────────────────────

// CreateCategory crea una categoría de blog en la empresa del caller.
func (uc *BlogUseCase) CreateCategory(ctx context.Context, c tenant.Caller, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Ensure(slug.Make(in.Slug), in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	category := &entity.BlogCategory{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToBlogCategoryResponse(category), nil
}

// GetCategoryByID obtiene una categoría de blog.
func (uc *BlogUseCase) GetCategoryByID(ctx context.Context, c tenant.Caller, id string) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlogCategory, id, tenant.OpRead); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToBlogCategoryResponse(category), nil
}

// ListCategories lista las categorías de blog visibles.
func (uc *BlogUseCase) ListCategories(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.CategoryListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindBlogCategory, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.ListCategories(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToBlogCategoryResponse(&page.Data[i]))
	}
	return &dto.CategoryListResponse{Categories: items, PageMeta: dto.Meta(page)}, nil
}

// UpdateCategory actualiza una categoría de blog.
func (uc *BlogUseCase) UpdateCategory(ctx context.Context, c tenant.Caller, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlogCategory, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetCategoryByID(ctx, id)
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
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Slug = s
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToBlogCategoryResponse(category), nil
}

// DeleteCategory elimina una categoría de blog.
func (uc *BlogUseCase) DeleteCategory(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindBlogCategory, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.DeleteCategory(ctx, id)
}
