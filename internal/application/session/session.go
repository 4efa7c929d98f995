package session

import (
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-panel/internal/domain"
)

// Manager mantiene la bandera de sesión del panel: el username autenticado
// por la pantalla de login externa. Reemplaza la bandera ambiental del diseño
// original con un ciclo de vida explícito: Login la fija, Logout la limpia y
// el montaje del dashboard la lee. No valida credenciales; la autenticación
// real queda fuera de alcance y el username se trata como confiable.
type Manager struct {
	mu       sync.RWMutex
	username string
}

// NewManager construye un manager sin sesión activa.
func NewManager() *Manager {
	return &Manager{}
}

// Login fija la bandera de sesión.
func (m *Manager) Login(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username es requerido", domain.ErrInvalidInput)
	}
	m.mu.Lock()
	m.username = username
	m.mu.Unlock()
	return nil
}

// Logout limpia la bandera de sesión.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.username = ""
	m.mu.Unlock()
}

// Current devuelve el username activo y si hay sesión.
func (m *Manager) Current() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username, m.username != ""
}
