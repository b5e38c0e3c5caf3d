package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
)

// LocalSessionID key de Fiber Locals con el ID de la sesión validada.
const LocalSessionID = "session_id"

// sessionChecker es el contrato mínimo que necesita el middleware para verificar sesiones.
// Lo implementa *billing.SessionUseCase.
type sessionChecker interface {
	Touch(id string) error
}

// RequireSession devuelve un middleware Fiber que valida el parámetro :id de la ruta.
//
// Comportamiento:
//   - 400 Bad Request → el ID no es un UUID.
//   - 404 Not Found   → la sesión no existe o caducó.
func RequireSession(checker sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.Params apunta al búfer de la petición; la copia sobrevive al handler.
		id := utils.CopyString(c.Params("id"))
		if _, err := uuid.Parse(id); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "INVALID_SESSION_ID",
				Message: "id de sesión inválido",
			})
		}
		if err := checker.Touch(id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Code:    "SESSION_NOT_FOUND",
					Message: "sesión no encontrada o caducada",
				})
			}
			return err
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// GetSessionID devuelve el ID de sesión del contexto (después de RequireSession).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
