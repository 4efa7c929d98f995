package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/dto"
	"github.com/jhoicas/inventario-panel/internal/application/session"
)

const localsSessionUser = "session_username"

// SessionRequired protege las vistas que exigen la bandera de sesión: sin
// ella responde 401 (el equivalente del redirect del cliente original al
// montar el dashboard sin bandera).
func SessionRequired(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := manager.Current()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_REQUIRED",
				Message: "inicia sesión para acceder al panel",
			})
		}
		c.Locals(localsSessionUser, username)
		return c.Next()
	}
}

// GetSessionUser devuelve el username fijado por SessionRequired.
func GetSessionUser(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsSessionUser).(string); ok {
		return v
	}
	return ""
}
