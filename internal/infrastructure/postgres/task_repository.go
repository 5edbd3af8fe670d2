package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// Columnas del listado hidratado: la tarea más los nombres de su cadena
// (interacción, lead, cliente) y del asignado, resueltos por join solo sobre
// la página actual.
const taskDetailColumns = `
	t.id, t.interaction_id, t.titre, t.description, t.statut, t.due_date, COALESCE(t.assigned_to::text, ''), t.created_at, t.updated_at,
	i.type_interaction, l.id, l.name, c.id, c.name,
	COALESCE(u.name, ''), COALESCE(u.email, '')`

const taskDetailFrom = `tasks t
	JOIN interactions i ON i.id = t.interaction_id
	JOIN leads l ON l.id = i.lead_id
	JOIN clients c ON c.id = l.client_id
	LEFT JOIN users u ON u.id = t.assigned_to`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func scanTaskDetail(row pgx.Row) (*entity.TaskDetail, error) {
	var d entity.TaskDetail
	err := row.Scan(&d.ID, &d.InteractionID, &d.Titre, &d.Description, &d.Statut,
		&d.DueDate, &d.AssignedTo, &d.CreatedAt, &d.UpdatedAt,
		&d.InteractionType, &d.LeadID, &d.LeadName, &d.ClientID, &d.ClientName,
		&d.AssigneeName, &d.AssigneeEmail)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO tasks (id, interaction_id, titre, description, statut, due_date, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.InteractionID, t.Titre, t.Description, t.Statut, t.DueDate,
		textOrNil(t.AssignedTo), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. Devuelve (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var t entity.Task
	err := r.q.QueryRow(ctx, `
		SELECT id, interaction_id, titre, description, statut, due_date, COALESCE(assigned_to::text, ''), created_at, updated_at
		FROM tasks WHERE id = $1`, id).Scan(
		&t.ID, &t.InteractionID, &t.Titre, &t.Description, &t.Statut,
		&t.DueDate, &t.AssignedTo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// GetDetailByID obtiene una tarea hidratada por ID. Devuelve (nil, nil) si no existe.
func (r *TaskRepo) GetDetailByID(ctx context.Context, id string) (*entity.TaskDetail, error) {
	d, err := scanTaskDetail(r.q.QueryRow(ctx,
		`SELECT `+taskDetailColumns+` FROM `+taskDetailFrom+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task detail: %w", err)
	}
	return d, nil
}

// List lista tareas hidratadas con alcance de visibilidad, filtros de estado
// y vencimiento, paginación y búsqueda.
func (r *TaskRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec, filter repository.TaskFilter) (*query.Page[entity.TaskDetail], error) {
	lq := listQuery{
		columns:    taskDetailColumns,
		from:       taskDetailFrom,
		searchCols: []string{"t.titre", "t.description", "l.name", "c.name"},
		sort:       "t.due_date ASC",
		countFrom:  taskDetailFrom,
	}
	// Qualificar las columnas del alcance: el listado se hace sobre el join.
	if scope != nil {
		qualified := *scope
		if qualified.Column != "" {
			qualified.Column = "t." + qualified.Column
		}
		if qualified.OwnerColumn != "" {
			qualified.OwnerColumn = "t." + qualified.OwnerColumn
		}
		lq.scope(&qualified)
	}
	if filter.Statut != "" {
		lq.where("t.statut = $%d", filter.Statut)
	}
	if !filter.DueBefore.IsZero() {
		lq.where("t.due_date <= $%d", filter.DueBefore)
	}
	if !filter.DueAfter.IsZero() {
		lq.where("t.due_date >= $%d", filter.DueAfter)
	}
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.TaskDetail, error) {
		d, err := scanTaskDetail(rows)
		if err != nil {
			return entity.TaskDetail{}, err
		}
		return *d, nil
	})
}

// Update actualiza una tarea existente.
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	_, err := r.q.Exec(ctx, `
		UPDATE tasks SET titre = $2, description = $3, statut = $4, due_date = $5, assigned_to = $6, updated_at = $7
		WHERE id = $1`,
		t.ID, t.Titre, t.Description, t.Statut, t.DueDate, textOrNil(t.AssignedTo), t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
