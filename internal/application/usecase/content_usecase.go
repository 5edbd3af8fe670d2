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

// ContentUseCase casos de uso editoriales del CMS. Los slugs son únicos por
// empresa; publicar fija published_at una sola vez.
type ContentUseCase struct {
	repo   repository.ContentRepository
	tags   repository.TagRepository
	access *Access
}

// NewContentUseCase construye el caso de uso.
func NewContentUseCase(repo repository.ContentRepository, tags repository.TagRepository, access *Access) *ContentUseCase {
	return &ContentUseCase{repo: repo, tags: tags, access: access}
}

// ensureSlug deriva y valida el slug dentro de la empresa.
func (uc *ContentUseCase) ensureSlug(ctx context.Context, companyID, slugValue, title, excludeID string) (string, error) {
	s := slug.Ensure(slug.Make(slugValue), title)
	if s == "" {
		return "", domain.ErrInvalidInput
	}
	taken, err := uc.repo.SlugExists(ctx, companyID, s, excludeID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrDuplicate
	}
	return s, nil
}

// Create crea un contenido en la empresa del caller; el autor es el caller.
func (uc *ContentUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateContentRequest) (*dto.ContentResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = "draft"
	}
	if !entity.ValidContentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.ensureSlug(ctx, companyID, in.Slug, in.Title, "")
	if err != nil {
		return nil, err
	}
	if in.CategoryID != "" {
		if _, err := uc.access.Authorize(ctx, c, tenant.KindCategory, in.CategoryID, tenant.OpRead); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	content := &entity.Content{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CategoryID: in.CategoryID,
		AuthorID:   c.ID,
		Title:      in.Title,
		Slug:       s,
		Body:       in.Body,
		Excerpt:    in.Excerpt,
		CoverURL:   in.CoverURL,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == "published" {
		content.PublishedAt = now
	}
	if err := uc.repo.Create(ctx, content); err != nil {
		return nil, err
	}
	return dto.ToContentResponse(content), nil
}

// GetByID obtiene un contenido con sus etiquetas.
func (uc *ContentUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.ContentResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContent, id, tenant.OpRead); err != nil {
		return nil, err
	}
	content, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrNotFound
	}
	return uc.hydrate(ctx, content)
}

// List lista los contenidos visibles con filtros de estado y categoría.
func (uc *ContentUseCase) List(ctx context.Context, c tenant.Caller, q dto.ContentListQuery) (*dto.ContentListResponse, error) {
	if q.Status != "" && !entity.ValidContentStatus(q.Status) {
		return nil, domain.ErrInvalidInput
	}
	scope, err := uc.access.Scope(ctx, c, tenant.KindContent, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	filter := repository.ContentFilter{Status: q.Status, CategoryID: q.CategoryID}
	page, err := uc.repo.List(ctx, scope, q.ToSpec(), filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContentResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToContentResponse(&page.Data[i]))
	}
	return &dto.ContentListResponse{Contents: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un contenido. La primera transición a published fija
// published_at; volver a publicar no lo reescribe.
func (uc *ContentUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContent, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	content, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		content.Title = *in.Title
	}
	if in.Slug != nil && slug.Make(*in.Slug) != content.Slug {
		s, err := uc.ensureSlug(ctx, content.CompanyID, *in.Slug, content.Title, content.ID)
		if err != nil {
			return nil, err
		}
		content.Slug = s
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			if _, err := uc.access.Authorize(ctx, c, tenant.KindCategory, *in.CategoryID, tenant.OpRead); err != nil {
				return nil, err
			}
		}
		content.CategoryID = *in.CategoryID
	}
	if in.Body != nil {
		content.Body = *in.Body
	}
	if in.Excerpt != nil {
		content.Excerpt = *in.Excerpt
	}
	if in.CoverURL != nil {
		content.CoverURL = *in.CoverURL
	}
	if in.Status != nil {
		if !entity.ValidContentStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status == "published" && content.PublishedAt.IsZero() {
			content.PublishedAt = time.Now().UTC()
		}
		content.Status = *in.Status
	}
	content.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, content); err != nil {
		return nil, err
	}
	return uc.hydrate(ctx, content)
}

// Delete elimina un contenido.
func (uc *ContentUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindContent, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// hydrate completa la respuesta con las etiquetas del contenido.
func (uc *ContentUseCase) hydrate(ctx context.Context, content *entity.Content) (*dto.ContentResponse, error) {
	out := dto.ToContentResponse(content)
	tags, err := uc.tags.TagsOf(ctx, content.ID)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		out.Tags = append(out.Tags, *dto.ToTagResponse(&tags[i]))
	}
	return out, nil
}
