package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario tal como lo espeja el panel.
// ProductID lo asigna el servicio remoto y es inmutable una vez fijado.
// Quantity nunca se observa negativa: la venta se rechaza en el panel si la
// cantidad pedida excede el stock actual.
type Product struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ProductDraft es el borrador transitorio de un formulario de producto.
// Price y Quantity llegan como texto (entrada de formulario/prompt) y se
// coercionan al confirmar; el borrador se descarta tras un envío exitoso.
type ProductDraft struct {
	Name        string
	Description string
	Category    string
	Price       string
	Quantity    string
}
