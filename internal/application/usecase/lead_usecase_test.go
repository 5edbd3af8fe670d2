package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// Fixture: empresa A con cliente y lead; empresa B con cliente propio.
func leadFixture() (*fakeTenantStore, *fakeLeadRepo) {
	store := newFakeTenantStore()
	store.put(tenant.KindClient, "cliente-a", "empresa-a")
	store.put(tenant.KindClient, "cliente-b", "empresa-b")
	store.put(tenant.KindLead, "lead-1", "cliente-a")

	repo := newFakeLeadRepo()
	repo.leads["lead-1"] = &entity.Lead{
		ID:       "lead-1",
		ClientID: "cliente-a",
		UserID:   "u-empresa-a",
		Name:     "Oportunidad",
		Statut:   entity.LeadStartToCall,
	}
	return store, repo
}

func TestLeadCreate_BajoClienteAjenoDenegado(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), salesOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-b",
		Name:     "Intruso",
	})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Len(t, repo.leads, 1, "no debe crearse nada")
}

func TestLeadCreate_SalesNoAsignaAOtro(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), salesOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
		UserID:   "otro-usuario",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	var guard *domain.RoleGuardError
	assert.ErrorAs(t, err, &guard)
}

// El guard de rol no basta: un admin tampoco puede asignar a un usuario de
// otra empresa ni a uno inexistente.
func TestLeadCreate_AsignadoDeOtraEmpresaDenegado(t *testing.T) {
	store, repo := leadFixture()
	store.put(tenant.KindUser, "user-b", "empresa-b")
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), adminOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
		UserID:   "user-b",
	})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Len(t, repo.leads, 1, "no debe crearse nada")
}

func TestLeadCreate_AsignadoInexistenteDenegado(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), adminOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
		UserID:   "fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.leads, 1)
}

func TestLeadCreate_AdminAsignaDentroDeSuEmpresa(t *testing.T) {
	store, repo := leadFixture()
	store.put(tenant.KindUser, "vendedor-a", "empresa-a")
	uc := NewLeadUseCase(repo, newTestAccess(store))

	out, err := uc.Create(context.Background(), adminOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
		UserID:   "vendedor-a",
	})
	require.NoError(t, err)
	assert.Equal(t, "vendedor-a", out.UserID)
}

func TestLeadCreate_SinAsignadoQuedaParaElCaller(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	out, err := uc.Create(context.Background(), salesOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-empresa-a", out.UserID)
	assert.Equal(t, entity.LeadStartToCall, out.Statut, "etapa inicial por defecto")
}

func TestLeadCreate_EtapaInvalida(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.Create(context.Background(), salesOf("empresa-a"), dto.CreateLeadRequest{
		ClientID: "cliente-a",
		Name:     "Nueva",
		Statut:   "etapa-inventada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un cambio de etapa debe ir por la escritura transaccional lead + log, nunca
// por el update plano.
func TestLeadUpdate_CambioDeEtapaEscribeLog(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	statut := entity.LeadCallToConnect
	out, err := uc.Update(context.Background(), salesOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{Statut: &statut})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadCallToConnect, out.Statut)

	assert.Equal(t, 0, repo.plainUpdates)
	assert.Equal(t, 1, repo.loggedUpdates)

	require.NotNil(t, repo.txLog)
	assert.Equal(t, "lead-1", repo.txLog.LeadID)
	assert.Equal(t, entity.LeadStartToCall, repo.txLog.PreviousStatut)
	assert.Equal(t, entity.LeadCallToConnect, repo.txLog.NewStatut)
	assert.Equal(t, "u-empresa-a", repo.txLog.ChangedBy)
	assert.Zero(t, repo.txLog.Duration, "sin historial previo la duración es cero")
}

func TestLeadUpdate_DuracionDesdeElUltimoCambio(t *testing.T) {
	store, repo := leadFixture()
	repo.logs = []entity.LeadStatusLog{{
		ID:        "log-0",
		LeadID:    "lead-1",
		NewStatut: entity.LeadStartToCall,
		ChangedAt: time.Now().UTC().Add(-2 * time.Hour),
	}}
	uc := NewLeadUseCase(repo, newTestAccess(store))

	statut := entity.LeadCallToConnect
	_, err := uc.Update(context.Background(), salesOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{Statut: &statut})
	require.NoError(t, err)

	require.NotNil(t, repo.txLog)
	twoHours := (2 * time.Hour).Milliseconds()
	assert.GreaterOrEqual(t, repo.txLog.Duration, twoHours)
	assert.Less(t, repo.txLog.Duration, twoHours+time.Minute.Milliseconds())
}

func TestLeadUpdate_SinCambioDeEtapaNoEscribeLog(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	name := "renombrada"
	_, err := uc.Update(context.Background(), salesOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.plainUpdates)
	assert.Equal(t, 0, repo.loggedUpdates)
	assert.Nil(t, repo.txLog)
}

func TestLeadUpdate_MismaEtapaExplicitaNoEscribeLog(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	statut := entity.LeadStartToCall
	_, err := uc.Update(context.Background(), salesOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{Statut: &statut})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.plainUpdates)
	assert.Equal(t, 0, repo.loggedUpdates)
}

func TestLeadUpdate_ReasignacionAOtraEmpresaDenegada(t *testing.T) {
	store, repo := leadFixture()
	store.put(tenant.KindUser, "user-b", "empresa-b")
	uc := NewLeadUseCase(repo, newTestAccess(store))

	userID := "user-b"
	_, err := uc.Update(context.Background(), adminOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{UserID: &userID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Equal(t, "u-empresa-a", repo.leads["lead-1"].UserID, "el asignado no debe cambiar")
}

func TestLeadUpdate_ReasignacionDentroDeLaEmpresa(t *testing.T) {
	store, repo := leadFixture()
	store.put(tenant.KindUser, "vendedor-a", "empresa-a")
	uc := NewLeadUseCase(repo, newTestAccess(store))

	userID := "vendedor-a"
	out, err := uc.Update(context.Background(), adminOf("empresa-a"), "lead-1", dto.UpdateLeadRequest{UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, "vendedor-a", out.UserID)
}

func TestLeadUpdate_OtraEmpresaDenegado(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	statut := entity.LeadLost
	_, err := uc.Update(context.Background(), salesOf("empresa-b"), "lead-1", dto.UpdateLeadRequest{Statut: &statut})
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
	assert.Equal(t, entity.LeadStartToCall, repo.leads["lead-1"].Statut)
}

func TestLeadList_MineRestringeAlCaller(t *testing.T) {
	store, repo := leadFixture()
	store.put(tenant.KindLead, "lead-2", "cliente-a")
	repo.leads["lead-2"] = &entity.Lead{
		ID: "lead-2", ClientID: "cliente-a", UserID: "otro-usuario",
		Name: "De otro", Statut: entity.LeadStartToCall,
	}
	uc := NewLeadUseCase(repo, newTestAccess(store))

	out, err := uc.List(context.Background(), salesOf("empresa-a"), dto.PageQuery{}, "", true)
	require.NoError(t, err)
	require.Len(t, out.Leads, 1)
	assert.Equal(t, "lead-1", out.Leads[0].ID)
}

func TestLeadList_ClientIDAjenoDenegado(t *testing.T) {
	store, repo := leadFixture()
	uc := NewLeadUseCase(repo, newTestAccess(store))

	_, err := uc.List(context.Background(), salesOf("empresa-a"), dto.PageQuery{}, "cliente-b", false)
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}

func TestLeadStatusLogs_AutorizaPorLaCadena(t *testing.T) {
	store, repo := leadFixture()
	repo.logs = []entity.LeadStatusLog{{ID: "log-0", LeadID: "lead-1", NewStatut: entity.LeadStartToCall}}
	uc := NewLeadUseCase(repo, newTestAccess(store))

	logs, err := uc.StatusLogs(context.Background(), salesOf("empresa-a"), "lead-1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	_, err = uc.StatusLogs(context.Background(), salesOf("empresa-b"), "lead-1")
	assert.ErrorIs(t, err, domain.ErrCrossTenant)
}
