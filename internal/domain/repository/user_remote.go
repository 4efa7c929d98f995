package repository

import (
	"context"

	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// UserRemote define el puerto de salida hacia la tabla de usuarios del
// servicio remoto. El contrato es paralelo a ProductRemote: misma regla de
// success=true en la eliminación y mismo eco opcional en la actualización.
type UserRemote interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, user entity.User) (int64, error)
	UpdateUser(ctx context.Context, user entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
