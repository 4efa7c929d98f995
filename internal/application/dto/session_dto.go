package dto

// LoginRequest entrada para fijar la bandera de sesión. El username llega
// confiable desde la pantalla de login externa; no hay credenciales.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// SessionResponse estado actual de la sesión.
type SessionResponse struct {
	Username string `json:"username"`
	LoggedIn bool   `json:"logged_in"`
}
