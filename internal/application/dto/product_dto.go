package dto

import "github.com/shopspring/decimal"

// ProductDraftRequest borrador de formulario de producto. Price y Quantity
// llegan como texto, igual que en un campo de formulario, y se coercionan en
// el store.
type ProductDraftRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
}

// AmountRequest entrada estilo prompt para comprar/vender.
type AmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ProductListResponse lista de productos de una vista.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ChartPointResponse punto de la gráfica de stock; el color es cosmético.
type ChartPointResponse struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DashboardResponse vista del dashboard: todos los productos, el total de
// unidades y la serie de la gráfica.
type DashboardResponse struct {
	User          string               `json:"user"`
	Products      []ProductResponse    `json:"products"`
	TotalQuantity int                  `json:"total_quantity"`
	Chart         []ChartPointResponse `json:"chart"`
}

// SearchResponse resultado de la búsqueda por nombre.
type SearchResponse struct {
	Query string            `json:"query"`
	Items []ProductResponse `json:"items"`
}
