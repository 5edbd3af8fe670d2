package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// Instante fijo para que las cotas de fecha sean deterministas.
var taskNow = time.Date(2026, 3, 14, 15, 30, 45, 0, time.UTC)

func TestTaskFilter_SinFiltroDeVencimiento(t *testing.T) {
	f, err := taskFilter(dto.TaskListQuery{}, taskNow)
	require.NoError(t, err)
	assert.True(t, f.DueBefore.IsZero())
	assert.True(t, f.DueAfter.IsZero())
}

func TestTaskFilter_Overdue(t *testing.T) {
	f, err := taskFilter(dto.TaskListQuery{Due: "overdue"}, taskNow)
	require.NoError(t, err)

	startOfDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, startOfDay, f.DueBefore)
	assert.True(t, f.DueAfter.IsZero())
}

func TestTaskFilter_Today(t *testing.T) {
	f, err := taskFilter(dto.TaskListQuery{Due: "today"}, taskNow)
	require.NoError(t, err)

	startOfDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, startOfDay, f.DueAfter)
	assert.Equal(t, startOfDay.AddDate(0, 0, 1), f.DueBefore)
}

func TestTaskFilter_Upcoming(t *testing.T) {
	f, err := taskFilter(dto.TaskListQuery{Due: "upcoming"}, taskNow)
	require.NoError(t, err)

	tomorrow := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, tomorrow, f.DueAfter)
	assert.True(t, f.DueBefore.IsZero())
}

func TestTaskFilter_DueDesconocido(t *testing.T) {
	_, err := taskFilter(dto.TaskListQuery{Due: "manana"}, taskNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskFilter_EstadoInvalido(t *testing.T) {
	_, err := taskFilter(dto.TaskListQuery{Statut: "inventado"}, taskNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskFilter_EstadoValidoSePropaga(t *testing.T) {
	f, err := taskFilter(dto.TaskListQuery{Statut: "pending"}, taskNow)
	require.NoError(t, err)
	assert.Equal(t, "pending", f.Statut)
}

// Fixture con la cadena completa a profundidad 3: la empresa A tiene dos
// tareas bajo una interacción; la empresa B tiene su cliente pero ninguna
// tarea.
func taskFixture() (*fakeTenantStore, *fakeTaskRepo) {
	store := newFakeTenantStore()
	store.put(tenant.KindClient, "cliente-a", "empresa-a")
	store.put(tenant.KindClient, "cliente-b", "empresa-b")
	store.put(tenant.KindLead, "lead-1", "cliente-a")
	store.put(tenant.KindInteraction, "int-1", "lead-1")
	store.put(tenant.KindTask, "task-1", "int-1")
	store.put(tenant.KindTask, "task-2", "int-1")

	repo := newFakeTaskRepo()
	repo.tasks["task-1"] = &entity.Task{
		ID: "task-1", InteractionID: "int-1", Titre: "Llamar",
		Statut: "pending", AssignedTo: "u-empresa-a",
	}
	repo.tasks["task-2"] = &entity.Task{
		ID: "task-2", InteractionID: "int-1", Titre: "Enviar propuesta",
		Statut: "pending", AssignedTo: "u-empresa-a",
	}
	return store, repo
}

func TestTaskList_CadaEmpresaVeSoloLoSuyo(t *testing.T) {
	store, repo := taskFixture()
	uc := NewTaskUseCase(repo, newTestAccess(store))

	outA, err := uc.List(context.Background(), salesOf("empresa-a"), dto.TaskListQuery{})
	require.NoError(t, err)
	require.Len(t, outA.Tasks, 2)
	assert.Equal(t, "task-1", outA.Tasks[0].ID)
	assert.Equal(t, "task-2", outA.Tasks[1].ID)
	assert.Equal(t, 2, outA.Total)

	outB, err := uc.List(context.Background(), salesOf("empresa-b"), dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Empty(t, outB.Tasks)
	assert.Equal(t, 0, outB.Total)
	require.NotNil(t, repo.lastScope)
	assert.False(t, repo.lastScope.All, "un caller ligado nunca lista sin restricción")
}

func TestTaskList_PaginacionPorDefecto(t *testing.T) {
	store := newFakeTenantStore()
	store.put(tenant.KindClient, "cliente-a", "empresa-a")
	store.put(tenant.KindLead, "lead-1", "cliente-a")
	store.put(tenant.KindInteraction, "int-1", "lead-1")

	repo := newFakeTaskRepo()
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("task-%02d", i)
		store.put(tenant.KindTask, id, "int-1")
		repo.tasks[id] = &entity.Task{ID: id, InteractionID: "int-1", Titre: "Seguimiento", Statut: "pending"}
	}
	uc := NewTaskUseCase(repo, newTestAccess(store))

	// Sin parámetros: 25 registros salen en páginas de 10.
	out, err := uc.List(context.Background(), salesOf("empresa-a"), dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 10)
	assert.Equal(t, 25, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 3, out.Pages)
	assert.Equal(t, "task-00", out.Tasks[0].ID)

	last, err := uc.List(context.Background(), salesOf("empresa-a"), dto.TaskListQuery{
		PageQuery: dto.PageQuery{Page: 3},
	})
	require.NoError(t, err)
	assert.Len(t, last.Tasks, 5)
	assert.Equal(t, 25, last.Total)
	assert.Equal(t, 3, last.Pages)
	assert.Equal(t, "task-20", last.Tasks[0].ID)
}

func TestTaskCreate_AsignadoDeOtraEmpresaDenegado(t *testing.T) {
	store, repo := taskFixture()
	store.put(tenant.KindUser, "user-b", "empresa-b")
	uc := NewTaskUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), adminOf("empresa-a"), dto.CreateTaskRequest{
		InteractionID: "int-1",
		Titre:         "Nueva",
		AssignedTo:    "user-b",
	})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Len(t, repo.tasks, 2, "no debe crearse nada")
}

func TestTaskCreate_AsignadoInexistenteDenegado(t *testing.T) {
	store, repo := taskFixture()
	uc := NewTaskUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), adminOf("empresa-a"), dto.CreateTaskRequest{
		InteractionID: "int-1",
		Titre:         "Nueva",
		AssignedTo:    "fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.tasks, 2)
}

func TestTaskUpdate_ReasignacionAOtraEmpresaDenegada(t *testing.T) {
	store, repo := taskFixture()
	store.put(tenant.KindUser, "user-b", "empresa-b")
	uc := NewTaskUseCase(repo, newTestAccess(store))

	assignee := "user-b"
	_, err := uc.Update(context.Background(), adminOf("empresa-a"), "task-1", dto.UpdateTaskRequest{AssignedTo: &assignee})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Equal(t, "u-empresa-a", repo.tasks["task-1"].AssignedTo, "el asignado no debe cambiar")
}

func TestTaskUpdate_ReasignacionDentroDeLaEmpresa(t *testing.T) {
	store, repo := taskFixture()
	store.put(tenant.KindUser, "soporte-a", "empresa-a")
	uc := NewTaskUseCase(repo, newTestAccess(store))

	assignee := "soporte-a"
	out, err := uc.Update(context.Background(), adminOf("empresa-a"), "task-1", dto.UpdateTaskRequest{AssignedTo: &assignee})
	require.NoError(t, err)
	assert.Equal(t, "soporte-a", out.AssignedTo)
}
