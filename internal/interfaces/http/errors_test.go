package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
)

// appReturning construye una app con una ruta que siempre falla con err.
func appReturning(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func errorResponseFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := appReturning(err)
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Un acceso entre empresas debe ser indistinguible de un recurso inexistente.
func TestRespondError_CrossTenantColapsaEn404(t *testing.T) {
	status, body := errorResponseFor(t, &domain.CrossTenantError{
		Op:            "read",
		CallerCompany: "empresa-a",
		TargetCompany: "empresa-b",
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.NotContains(t, body.Message, "empresa-b",
		"la respuesta no debe revelar la empresa propietaria")
}

func TestRespondError_ReferenciaRotaColapsaEn404(t *testing.T) {
	status, body := errorResponseFor(t, &domain.BrokenReferenceError{Kind: "client", ID: "c-1"})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.NotContains(t, body.Message, "c-1")
}

func TestRespondError_RoleGuardExponeMotivo(t *testing.T) {
	status, body := errorResponseFor(t, &domain.RoleGuardError{Reason: "un usuario no puede eliminarse a sí mismo"})

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "un usuario no puede eliminarse a sí mismo", body.Message)
}

func TestRespondError_MapeoDeErroresCentinela(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email duplicado", domain.ErrEmailAlreadyExists, http.StatusConflict, "DUPLICATE"},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{"sin empresa", domain.ErrMissingTenant, http.StatusForbidden, "MISSING_TENANT"},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"no autorizado", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"desconocido", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := errorResponseFor(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// Los errores envueltos siguen mapeando por errors.Is.
func TestRespondError_ErrorEnvuelto(t *testing.T) {
	status, body := errorResponseFor(t, errors.Join(errors.New("contexto"), domain.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
}
