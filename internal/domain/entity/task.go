package entity

import "time"

// Estados de una tarea.
var TaskStatuts = []string{"pending", "in progress", "completed"}

// ValidTaskStatut indica si s es un estado conocido.
func ValidTaskStatut(s string) bool {
	for _, v := range TaskStatuts {
		if v == s {
			return true
		}
	}
	return false
}

// Task tarea de seguimiento ligada a una interacción (profundidad 3 en la
// cadena de tenencia: task → interaction → lead → client → company).
type Task struct {
	ID            string
	InteractionID string
	Titre         string
	Description   string
	Statut        string // pending, in progress, completed
	DueDate       time.Time
	AssignedTo    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskDetail fila de listado hidratada (población solo de la página actual):
// la tarea más los nombres de su cadena y del asignado.
type TaskDetail struct {
	Task
	InteractionType string
	LeadID          string
	LeadName        string
	ClientID        string
	ClientName      string
	AssigneeName    string
	AssigneeEmail   string
}
