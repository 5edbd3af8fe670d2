package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// FileStore puerto del bucket de medios.
type FileStore interface {
	Key(companyID, fileName string) string
	PublicURL(key string) string
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
	SignedPutURL(ctx context.Context, key, contentType string) (string, error)
}

// MediaUseCase casos de uso de archivos del CMS: subida vía API, subida
// directa con URL firmada y borrado bucket + metadatos.
type MediaUseCase struct {
	repo   repository.MediaRepository
	store  FileStore
	access *Access
}

// NewMediaUseCase construye el caso de uso.
func NewMediaUseCase(repo repository.MediaRepository, store FileStore, access *Access) *MediaUseCase {
	return &MediaUseCase{repo: repo, store: store, access: access}
}

// mediaTypeOf deriva el tipo general del MIME: image/png -> image.
func mediaTypeOf(mime string) string {
	prefix, _, found := strings.Cut(mime, "/")
	if !found || prefix == "" {
		return "other"
	}
	return prefix
}

// Upload sube el archivo al bucket y persiste sus metadatos. Para imágenes
// decodificables se sondean las dimensiones.
func (uc *MediaUseCase) Upload(ctx context.Context, c tenant.Caller, in dto.UploadMediaRequest) (*dto.MediaResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if in.FileName == "" || len(in.Body) == 0 {
		return nil, domain.ErrInvalidInput
	}
	key := uc.store.Key(companyID, in.FileName)
	url, err := uc.store.Put(ctx, key, in.MimeType, in.Body)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	media := &entity.Media{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UploaderID: c.ID,
		FileName:   in.FileName,
		Key:        key,
		URL:        url,
		MimeType:   in.MimeType,
		MediaType:  mediaTypeOf(in.MimeType),
		SizeBytes:  int64(len(in.Body)),
		Title:      in.Title,
		AltText:    in.AltText,
		Caption:    in.Caption,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if media.MediaType == "image" {
		// Formato no soportado o archivo corrupto: se sube igual, sin dimensiones.
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(in.Body)); err == nil {
			media.Width = cfg.Width
			media.Height = cfg.Height
		}
	}
	if err := uc.repo.Create(ctx, media); err != nil {
		return nil, err
	}
	return dto.ToMediaResponse(media), nil
}

// Update actualiza los metadatos editables de un archivo.
func (uc *MediaUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateMediaRequest) (*dto.MediaResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindMedia, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	media, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		media.Title = *in.Title
	}
	if in.Description != nil {
		media.Description = *in.Description
	}
	if in.AltText != nil {
		media.AltText = *in.AltText
	}
	if in.Caption != nil {
		media.Caption = *in.Caption
	}
	media.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, media); err != nil {
		return nil, err
	}
	return dto.ToMediaResponse(media), nil
}

// SignedURL genera una URL firmada para que el cliente suba directo al bucket.
func (uc *MediaUseCase) SignedURL(ctx context.Context, c tenant.Caller, in dto.SignedURLRequest) (*dto.SignedURLResponse, error) {
	companyID, err := resolveCompany(c, "")
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			// super_admin sin empresa: las subidas firmadas exigen una.
			return nil, domain.ErrMissingTenant
		}
		return nil, err
	}
	if in.FileName == "" || in.ContentType == "" {
		return nil, domain.ErrInvalidInput
	}
	key := uc.store.Key(companyID, in.FileName)
	signed, err := uc.store.SignedPutURL(ctx, key, in.ContentType)
	if err != nil {
		return nil, err
	}
	return &dto.SignedURLResponse{
		SignedURL: signed,
		FileURL:   uc.store.PublicURL(key),
		Key:       key,
	}, nil
}

// GetByID obtiene los metadatos de un archivo.
func (uc *MediaUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.MediaResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindMedia, id, tenant.OpRead); err != nil {
		return nil, err
	}
	media, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMediaResponse(media), nil
}

// List lista los archivos visibles, con filtro opcional por tipo de medio.
func (uc *MediaUseCase) List(ctx context.Context, c tenant.Caller, q dto.MediaListQuery) (*dto.MediaListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindMedia, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec(), q.MediaType)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MediaResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToMediaResponse(&page.Data[i]))
	}
	return &dto.MediaListResponse{Media: items, PageMeta: dto.Meta(page)}, nil
}

// Delete borra el objeto del bucket y luego sus metadatos.
func (uc *MediaUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindMedia, id, tenant.OpDelete); err != nil {
		return err
	}
	media, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return domain.ErrNotFound
	}
	if err := uc.store.Delete(ctx, media.Key); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
