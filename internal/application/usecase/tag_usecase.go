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

// TagUseCase casos de uso de etiquetas y de sus asociaciones con contenidos.
type TagUseCase struct {
	repo   repository.TagRepository
	access *Access
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository, access *Access) *TagUseCase {
	return &TagUseCase{repo: repo, access: access}
}

// Create crea una etiqueta en la empresa del caller. El slug se deriva del
// nombre; repetirlo dentro de la empresa es un duplicado.
func (uc *TagUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Make(in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(ctx, companyID, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	tag := &entity.Tag{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Slug:      s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return dto.ToTagResponse(tag), nil
}

// GetByID obtiene una etiqueta autorizando por empresa.
func (uc *TagUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.TagResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTag, id, tenant.OpRead); err != nil {
		return nil, err
	}
	tag, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToTagResponse(tag), nil
}

// List lista las etiquetas visibles.
func (uc *TagUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.TagListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindTag, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToTagResponse(&page.Data[i]))
	}
	return &dto.TagListResponse{Tags: items, PageMeta: dto.Meta(page)}, nil
}

// Usage devuelve las etiquetas visibles con al menos min asociaciones,
// ordenadas por uso descendente.
func (uc *TagUseCase) Usage(ctx context.Context, c tenant.Caller, min int) ([]dto.TagResponse, error) {
	if min < 0 {
		return nil, domain.ErrInvalidInput
	}
	scope, err := uc.access.Scope(ctx, c, tenant.KindTag, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	tags, err := uc.repo.ByMinUsage(ctx, scope, min)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, *dto.ToTagResponse(&tags[i]))
	}
	return out, nil
}

// Update renombra una etiqueta; el slug se regenera con el nombre.
func (uc *TagUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateTagRequest) (*dto.TagResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTag, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	tag, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		s := slug.Make(*in.Name)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		if s != tag.Slug {
			existing, err := uc.repo.GetBySlug(ctx, tag.CompanyID, s)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		tag.Name = *in.Name
		tag.Slug = s
	}
	tag.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return dto.ToTagResponse(tag), nil
}

// Delete elimina una etiqueta y sus asociaciones.
func (uc *TagUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTag, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// authorizePair verifica que contenido y etiqueta existan y pertenezcan a la
// misma empresa visible para el caller.
func (uc *TagUseCase) authorizePair(ctx context.Context, c tenant.Caller, contentID, tagID string) error {
	contentCompany, err := uc.access.Authorize(ctx, c, tenant.KindContent, contentID, tenant.OpWrite)
	if err != nil {
		return err
	}
	tagCompany, err := uc.access.Authorize(ctx, c, tenant.KindTag, tagID, tenant.OpWrite)
	if err != nil {
		return err
	}
	if contentCompany != tagCompany {
		return domain.ErrNotFound
	}
	return nil
}

// Attach asocia una etiqueta a un contenido. El contador de uso se actualiza
// en la misma transacción que la asociación.
func (uc *TagUseCase) Attach(ctx context.Context, c tenant.Caller, contentID, tagID string) error {
	if err := uc.authorizePair(ctx, c, contentID, tagID); err != nil {
		return err
	}
	return uc.repo.Attach(ctx, contentID, tagID)
}

// Detach quita una etiqueta de un contenido.
func (uc *TagUseCase) Detach(ctx context.Context, c tenant.Caller, contentID, tagID string) error {
	if err := uc.authorizePair(ctx, c, contentID, tagID); err != nil {
		return err
	}
	return uc.repo.Detach(ctx, contentID, tagID)
}

// Contents lista los contenidos asociados a una etiqueta.
func (uc *TagUseCase) Contents(ctx context.Context, c tenant.Caller, tagID string, q dto.PageQuery) (*dto.ContentListResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTag, tagID, tenant.OpRead); err != nil {
		return nil, err
	}
	page, err := uc.repo.ContentsWith(ctx, tagID, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContentResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToContentResponse(&page.Data[i]))
	}
	return &dto.ContentListResponse{Contents: items, PageMeta: dto.Meta(page)}, nil
}
