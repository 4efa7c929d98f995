package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
	"github.com/jhoicas/inventario-panel/internal/domain/repository"
	"github.com/jhoicas/inventario-panel/pkg/logger"
)

// UserStore espeja la lista de usuarios del servicio remoto con el mismo
// patrón de fusión optimista de ProductStore: mutación local solo tras éxito,
// estado intacto ante cualquier fallo. Es estructuralmente paralelo pero más
// simple (sin vistas derivadas ni libro de ventas).
type UserStore struct {
	mu     sync.RWMutex
	remote repository.UserRemote
	log    *logger.Logger
	users  []entity.User
}

// NewUserStore construye el store vacío; Load lo puebla.
func NewUserStore(remote repository.UserRemote, log *logger.Logger) *UserStore {
	return &UserStore{remote: remote, log: log}
}

// Load reemplaza la lista completa con la respuesta del servicio remoto.
func (s *UserStore) Load(ctx context.Context) error {
	users, err := s.remote.ListUsers(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("cargar usuarios del servicio remoto")
		return err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	s.log.Info().Int("count", len(users)).Msg("lista de usuarios sincronizada")
	return nil
}

// All devuelve todos los usuarios en orden de lista.
func (s *UserStore) All() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get devuelve el usuario con el id dado, o ErrNotFound.
func (s *UserStore) Get(id int64) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return entity.User{}, domain.ErrNotFound
}

// Create envía el borrador y, en éxito, anexa el usuario con el user_id
// devuelto por el servicio remoto.
func (s *UserStore) Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error) {
	if draft.Username == "" || draft.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	user := entity.User{Username: draft.Username, Password: draft.Password}

	id, err := s.remote.CreateUser(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Str("username", user.Username).Msg("alta de usuario")
		return nil, err
	}
	user.UserID = id

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()
	return &user, nil
}

// Update envía el borrador completo y reemplaza la entrada local por
// identidad, usando el eco del servidor cuando lo hay.
func (s *UserStore) Update(ctx context.Context, id int64, draft entity.UserDraft) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if draft.Username == "" || draft.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	user := entity.User{UserID: id, Username: draft.Username, Password: draft.Password}

	echo, err := s.remote.UpdateUser(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", id).Msg("actualización de usuario")
		return nil, err
	}
	merged := user
	if echo != nil {
		merged = *echo
		merged.UserID = id
	}

	s.mu.Lock()
	for i, u := range s.users {
		if u.UserID == id {
			s.users[i] = merged
			break
		}
	}
	s.mu.Unlock()
	return &merged, nil
}

// Remove elimina el usuario localmente solo tras un success=true explícito.
func (s *UserStore) Remove(ctx context.Context, id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.remote.DeleteUser(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("user_id", id).Msg("baja de usuario")
		return err
	}

	s.mu.Lock()
	for i, u := range s.users {
		if u.UserID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
