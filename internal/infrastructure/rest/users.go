package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// userPayload cuerpo de POST/PUT /users.
type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createUserResponse respuesta de POST /users.
type createUserResponse struct {
	UserID int64 `json:"user_id"`
}

// userEcho representación devuelta por PUT /users/{id}.
type userEcho struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// ListUsers recupera la lista completa de usuarios (GET /users).
func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	raw, err := c.do(ctx, "list_users", http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	var users []entity.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: lista de usuarios: %v", domain.ErrRemoteBody, err)
	}
	return users, nil
}

// CreateUser registra el usuario (POST /users) y devuelve el user_id asignado.
func (c *Client) CreateUser(ctx context.Context, user entity.User) (int64, error) {
	payload := userPayload{Username: user.Username, Password: user.Password}
	raw, err := c.do(ctx, "create_user", http.MethodPost, "/users", payload)
	if err != nil {
		return 0, err
	}
	var out createUserResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("%w: alta de usuario: %v", domain.ErrRemoteBody, err)
	}
	return out.UserID, nil
}

// UpdateUser envía username y password (PUT /users/{id}) y devuelve el eco del
// servidor fusionado, o nil si la respuesta no trae campos utilizables.
func (c *Client) UpdateUser(ctx context.Context, user entity.User) (*entity.User, error) {
	payload := userPayload{Username: user.Username, Password: user.Password}
	path := fmt.Sprintf("/users/%d", user.UserID)
	raw, err := c.do(ctx, "update_user", http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}

	var echo userEcho
	if len(raw) == 0 || json.Unmarshal(raw, &echo) != nil {
		return nil, nil
	}
	merged := user
	applied := false
	if echo.Username != nil {
		merged.Username = *echo.Username
		applied = true
	}
	if echo.Password != nil {
		merged.Password = *echo.Password
		applied = true
	}
	if !applied {
		return nil, nil
	}
	return &merged, nil
}

// DeleteUser elimina el usuario (DELETE /users/{id}); la regla success=true
// es la misma que para productos.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/users/%d", id)
	raw, err := c.do(ctx, "delete_user", http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	var out statusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("%w: baja de usuario: %v", domain.ErrRemoteBody, err)
	}
	if !out.Success {
		return fmt.Errorf("%w: %s", domain.ErrDeleteRejected, out.Message)
	}
	return nil
}
