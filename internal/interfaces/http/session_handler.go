package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/dto"
	"github.com/jhoicas/inventario-panel/internal/application/session"
)

// SessionHandler maneja el ciclo de vida de la bandera de sesión.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler construye el handler.
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Login godoc
// @Summary      Fijar la bandera de sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Username autenticado externamente"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.manager.Login(in.Username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{Username: in.Username, LoggedIn: true})
}

// Logout godoc
// @Summary      Limpiar la bandera de sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.manager.Logout()
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Current godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	username, ok := h.manager.Current()
	return c.JSON(dto.SessionResponse{Username: username, LoggedIn: ok})
}
