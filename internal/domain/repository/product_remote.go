package repository

import (
	"context"

	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// ProductRemote define el puerto de salida hacia la tabla de productos del
// servicio remoto de inventario (DIP). La implementación concreta usa
// HTTP+JSON; para tests se puede inyectar un fake.
type ProductRemote interface {
	// List recupera la lista completa de productos.
	List(ctx context.Context) ([]entity.Product, error)
	// Create registra un producto nuevo y devuelve el product_id asignado
	// por el servicio remoto.
	Create(ctx context.Context, product entity.Product) (int64, error)
	// Update envía el juego completo de campos del producto (PUT). Devuelve
	// la representación que el servidor hizo eco, o nil si la respuesta no
	// trae campos utilizables (el llamador conserva entonces su copia local).
	Update(ctx context.Context, product entity.Product) (*entity.Product, error)
	// Delete elimina el producto. Solo un success=true explícito cuenta como
	// éxito; success=false devuelve ErrDeleteRejected.
	Delete(ctx context.Context, id int64) error
}
