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

// NoteUseCase casos de uso CRUD para notas de cliente.
type NoteUseCase struct {
	repo   repository.NoteRepository
	access *Access
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.NoteRepository, access *Access) *NoteUseCase {
	return &NoteUseCase{repo: repo, access: access}
}

// Create crea una nota bajo un cliente visible.
func (uc *NoteUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindClient, in.ClientID, tenant.OpWrite); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	note := &entity.Note{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Contenu:   in.Contenu,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return dto.ToNoteResponse(note), nil
}

// GetByID obtiene una nota autorizando por la cadena.
func (uc *NoteUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.NoteResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindNote, id, tenant.OpRead); err != nil {
		return nil, err
	}
	note, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToNoteResponse(note), nil
}

// List lista las notas visibles, opcionalmente filtradas por cliente.
func (uc *NoteUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery, clientID string) (*dto.NoteListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindNote, tenant.ScopeOptions{ParentID: clientID})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.NoteResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToNoteResponse(&page.Data[i]))
	}
	return &dto.NoteListResponse{Notes: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una nota autorizando por la cadena.
func (uc *NoteUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindNote, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	note, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if in.Contenu != nil {
		note.Contenu = *in.Contenu
	}
	note.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return dto.ToNoteResponse(note), nil
}

// Delete elimina una nota autorizando por la cadena.
func (uc *NoteUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindNote, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
