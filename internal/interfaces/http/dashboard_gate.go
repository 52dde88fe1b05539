package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/dto"
)

// Header con el secreto estático que protege solo las rutas del dashboard,
// independiente de la sesión JWT.
const dashboardSecretHeader = "X-Dashboard-Secret"

// DashboardGate compara el header X-Dashboard-Secret contra el secreto
// configurado. Con secreto vacío el dashboard queda deshabilitado.
func DashboardGate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "dashboard deshabilitado"})
		}
		provided := c.Get(dashboardSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "secreto de dashboard inválido"})
		}
		return c.Next()
	}
}
