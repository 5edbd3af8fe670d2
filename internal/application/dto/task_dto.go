package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// CreateTaskRequest entrada para crear una tarea.
type CreateTaskRequest struct {
	InteractionID string    `json:"interaction_id" validate:"required"`
	Titre         string    `json:"titre" validate:"required,min=1,max=200"`
	Description   string    `json:"description"`
	Statut        string    `json:"statut"`
	DueDate       time.Time `json:"due_date"`
	AssignedTo    string    `json:"assigned_to"`
}

// UpdateTaskRequest entrada para actualizar una tarea.
type UpdateTaskRequest struct {
	Titre       *string    `json:"titre" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Statut      *string    `json:"statut"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *string    `json:"assigned_to"`
}

// TaskListQuery filtros propios del listado de tareas, además de la paginación.
type TaskListQuery struct {
	PageQuery
	Statut        string `query:"statut"`
	InteractionID string `query:"interaction_id"`
	Due           string `query:"due"` // overdue | today | upcoming
	Mine          bool   `query:"mine"`
}

// TaskResponse salida de una tarea hidratada con su cadena.
type TaskResponse struct {
	ID              string    `json:"id"`
	InteractionID   string    `json:"interaction_id"`
	Titre           string    `json:"titre"`
	Description     string    `json:"description"`
	Statut          string    `json:"statut"`
	DueDate         time.Time `json:"due_date"`
	AssignedTo      string    `json:"assigned_to,omitempty"`
	InteractionType string    `json:"interaction_type,omitempty"`
	LeadID          string    `json:"lead_id,omitempty"`
	LeadName        string    `json:"lead_name,omitempty"`
	ClientID        string    `json:"client_id,omitempty"`
	ClientName      string    `json:"client_name,omitempty"`
	AssigneeName    string    `json:"assignee_name,omitempty"`
	AssigneeEmail   string    `json:"assignee_email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TaskListResponse sobre de listado de tareas.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	PageMeta
}

// ToTaskResponse mapea la tarea plana a su DTO.
func ToTaskResponse(t *entity.Task) *TaskResponse {
	if t == nil {
		return nil
	}
	return &TaskResponse{
		ID:            t.ID,
		InteractionID: t.InteractionID,
		Titre:         t.Titre,
		Description:   t.Description,
		Statut:        t.Statut,
		DueDate:       t.DueDate,
		AssignedTo:    t.AssignedTo,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTaskDetailResponse mapea la fila hidratada a su DTO.
func ToTaskDetailResponse(d *entity.TaskDetail) *TaskResponse {
	if d == nil {
		return nil
	}
	out := ToTaskResponse(&d.Task)
	out.InteractionType = d.InteractionType
	out.LeadID = d.LeadID
	out.LeadName = d.LeadName
	out.ClientID = d.ClientID
	out.ClientName = d.ClientName
	out.AssigneeName = d.AssigneeName
	out.AssigneeEmail = d.AssigneeEmail
	return out
}
