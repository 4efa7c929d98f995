package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// productPayload cuerpo de POST/PUT /products: el juego completo de campos.
// Los ajustes de cantidad (comprar/vender) también viajan con el objeto
// completo; es el contrato que el servicio remoto documenta.
type productPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// createProductResponse respuesta de POST /products.
type createProductResponse struct {
	ProductID int64 `json:"product_id"`
}

// productEcho representación devuelta por PUT /products/{id}. Campos como
// punteros para distinguir ausencia de valor cero.
type productEcho struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
}

// List recupera la lista completa de productos (GET /products).
func (c *Client) List(ctx context.Context) ([]entity.Product, error) {
	raw, err := c.do(ctx, "list_products", http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: lista de productos: %v", domain.ErrRemoteBody, err)
	}
	return products, nil
}

// Create registra el producto (POST /products) y devuelve el product_id
// asignado por el servicio remoto.
func (c *Client) Create(ctx context.Context, product entity.Product) (int64, error) {
	payload := productPayload{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
	}
	raw, err := c.do(ctx, "create_product", http.MethodPost, "/products", payload)
	if err != nil {
		return 0, err
	}
	var out createProductResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return 0, fmt.Errorf("%w: alta de producto: %v", domain.ErrRemoteBody, err)
	}
	return out.ProductID, nil
}

// Update envía el juego completo de campos (PUT /products/{id}) y devuelve la
// representación que el servidor hizo eco, fusionada sobre el producto
// enviado. Si el cuerpo no trae campos utilizables devuelve nil sin error:
// el llamador conserva su copia local.
func (c *Client) Update(ctx context.Context, product entity.Product) (*entity.Product, error) {
	payload := productPayload{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
	}
	path := fmt.Sprintf("/products/%d", product.ProductID)
	raw, err := c.do(ctx, "update_product", http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}

	var echo productEcho
	if len(raw) == 0 || json.Unmarshal(raw, &echo) != nil {
		return nil, nil
	}
	merged := product
	applied := false
	if echo.Name != nil {
		merged.Name = *echo.Name
		applied = true
	}
	if echo.Description != nil {
		merged.Description = *echo.Description
		applied = true
	}
	if echo.Category != nil {
		merged.Category = *echo.Category
		applied = true
	}
	if echo.Price != nil {
		merged.Price = *echo.Price
		applied = true
	}
	if echo.Quantity != nil {
		merged.Quantity = *echo.Quantity
		applied = true
	}
	if !applied {
		return nil, nil
	}
	return &merged, nil
}

// Delete elimina el producto (DELETE /products/{id}). Solo success=true
// explícito cuenta como éxito.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/products/%d", id)
	raw, err := c.do(ctx, "delete_product", http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	var out statusResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("%w: baja de producto: %v", domain.ErrRemoteBody, err)
	}
	if !out.Success {
		return fmt.Errorf("%w: %s", domain.ErrDeleteRejected, out.Message)
	}
	return nil
}
