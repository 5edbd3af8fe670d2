package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// TaskFilter filtros adicionales de listado de tareas.
type TaskFilter struct {
	Statut    string    // vacío = todas
	DueBefore time.Time // cero = sin cota
	DueAfter  time.Time
}

// TaskRepository acceso a tareas. Los listados devuelven filas hidratadas con
// la cadena interacción/lead/cliente y el asignado, resueltos por join solo
// sobre la página actual.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	GetDetailByID(ctx context.Context, id string) (*entity.TaskDetail, error)
	List(ctx context.Context, scope *tenant.Scope, spec query.Spec, filter TaskFilter) (*query.Page[entity.TaskDetail], error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
}
