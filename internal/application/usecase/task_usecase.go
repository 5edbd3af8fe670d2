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

// TaskUseCase casos de uso para tareas de seguimiento.
type TaskUseCase struct {
	repo   repository.TaskRepository
	access *Access
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, access *Access) *TaskUseCase {
	return &TaskUseCase{repo: repo, access: access}
}

// Create crea una tarea bajo una interacción visible. Asignar a otro usuario
// exige rol de administrador y el asignado debe pertenecer a la empresa de la
// interacción.
func (uc *TaskUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindInteraction, in.InteractionID, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	statut := in.Statut
	if statut == "" {
		statut = "pending"
	}
	if !entity.ValidTaskStatut(statut) {
		return nil, domain.ErrInvalidInput
	}
	if in.AssignedTo != "" && in.AssignedTo != c.ID {
		if err := tenant.CanAssignOther(c); err != nil {
			return nil, err
		}
		if err := uc.access.authorizeAssignee(ctx, c, in.AssignedTo, company); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	task := &entity.Task{
		ID:            uuid.New().String(),
		InteractionID: in.InteractionID,
		Titre:         in.Titre,
		Description:   in.Description,
		Statut:        statut,
		DueDate:       in.DueDate,
		AssignedTo:    in.AssignedTo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// GetByID obtiene una tarea hidratada con su cadena.
func (uc *TaskUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.TaskResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTask, id, tenant.OpRead); err != nil {
		return nil, err
	}
	detail, err := uc.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToTaskDetailResponse(detail), nil
}

// taskFilter traduce el filtro due relativo a cotas absolutas de fecha.
func taskFilter(q dto.TaskListQuery, now time.Time) (repository.TaskFilter, error) {
	f := repository.TaskFilter{Statut: q.Statut}
	if q.Statut != "" && !entity.ValidTaskStatut(q.Statut) {
		return f, domain.ErrInvalidInput
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch q.Due {
	case "":
	case "overdue":
		f.DueBefore = startOfDay
	case "today":
		f.DueAfter = startOfDay
		f.DueBefore = startOfDay.AddDate(0, 0, 1)
	case "upcoming":
		f.DueAfter = startOfDay.AddDate(0, 0, 1)
	default:
		return f, domain.ErrInvalidInput
	}
	return f, nil
}

// List lista las tareas visibles con filtros de estado, vencimiento y
// asignación personal.
func (uc *TaskUseCase) List(ctx context.Context, c tenant.Caller, q dto.TaskListQuery) (*dto.TaskListResponse, error) {
	filter, err := taskFilter(q, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	scope, err := uc.access.Scope(ctx, c, tenant.KindTask, tenant.ScopeOptions{
		ParentID:    q.InteractionID,
		OwnerColumn: "assigned_to",
		Personal:    q.Mine,
	})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec(), filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToTaskDetailResponse(&page.Data[i]))
	}
	return &dto.TaskListResponse{Tasks: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una tarea. Reasignar a otro usuario exige rol de
// administrador y el asignado debe pertenecer a la empresa de la tarea.
func (uc *TaskUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	company, err := uc.access.Authorize(ctx, c, tenant.KindTask, id, tenant.OpWrite)
	if err != nil {
		return nil, err
	}
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if in.Titre != nil {
		task.Titre = *in.Titre
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Statut != nil {
		if !entity.ValidTaskStatut(*in.Statut) {
			return nil, domain.ErrInvalidInput
		}
		task.Statut = *in.Statut
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.AssignedTo != nil && *in.AssignedTo != task.AssignedTo {
		if *in.AssignedTo != "" && *in.AssignedTo != c.ID {
			if err := tenant.CanAssignOther(c); err != nil {
				return nil, err
			}
			if err := uc.access.authorizeAssignee(ctx, c, *in.AssignedTo, company); err != nil {
				return nil, err
			}
		}
		task.AssignedTo = *in.AssignedTo
	}
	task.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// Delete elimina una tarea autorizando por la cadena.
func (uc *TaskUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindTask, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
