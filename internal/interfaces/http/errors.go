package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP.
//
// Los accesos entre empresas y las referencias rotas colapsan en el mismo 404
// que un recurso inexistente: la respuesta nunca revela que el registro existe
// en otra empresa. El detalle queda solo en el log de auditoría.
func respondError(c *fiber.Ctx, err error) error {
	var crossTenant *domain.CrossTenantError
	if errors.As(err, &crossTenant) {
		log.Warn().
			Str("op", crossTenant.Op).
			Str("caller_company", crossTenant.CallerCompany).
			Str("target_company", crossTenant.TargetCompany).
			Str("path", c.Path()).
			Msg("acceso entre empresas denegado")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	var broken *domain.BrokenReferenceError
	if errors.As(err, &broken) {
		log.Error().
			Str("kind", broken.Kind).
			Str("id", broken.ID).
			Str("path", c.Path()).
			Msg("cadena de pertenencia rota")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	var roleGuard *domain.RoleGuardError
	if errors.As(err, &roleGuard) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: roleGuard.Reason})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrMissingTenant):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: "el usuario no tiene empresa asignada"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
