package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/dto"
	"github.com/jhoicas/inventario-panel/internal/application/store"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP de la vista de gestión de
// productos: CRUD, comprar/vender y el libro de ventas.
type ProductHandler struct {
	products *store.ProductStore
	ledger   *store.SalesLedger
}

// NewProductHandler construye el handler.
func NewProductHandler(products *store.ProductStore, ledger *store.SalesLedger) *ProductHandler {
	return &ProductHandler{products: products, ledger: ledger}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

// List godoc
// @Summary      Listar productos
// @Description  Por defecto la vista de gestión: solo productos con cantidad mayor a cero. Con all=true, la lista completa.
// @Tags         products
// @Produce      json
// @Param        all  query  bool  false  "Incluir productos sin stock"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("all", false) {
		return c.JSON(toProductList(h.products.All()))
	}
	return c.JSON(toProductList(h.products.Visible()))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductDraftRequest  true  "Borrador del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft := entity.ProductDraft{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	out, err := h.products.Create(c.UserContext(), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(*out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ProductDraftRequest  true  "Borrador con el juego completo de campos"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.ProductDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft := entity.ProductDraft{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	out, err := h.products.Update(c.UserContext(), id, draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(*out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.products.Remove(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// Buy godoc
// @Summary      Comprar stock de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.AmountRequest  true  "Cantidad a comprar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/buy [post]
func (h *ProductHandler) Buy(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.AmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.products.Buy(c.UserContext(), id, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(*out))
}

// Sell godoc
// @Summary      Vender stock de un producto
// @Description  Rechaza sin llamar a red cantidades no numéricas, no positivas o mayores al stock; en aceptación registra la venta en el libro local.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.AmountRequest  true  "Cantidad a vender"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sell [post]
func (h *ProductHandler) Sell(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.AmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.products.Sell(c.UserContext(), id, in.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(*out))
}

// Refresh godoc
// @Summary      Resincronizar la lista de productos desde el servicio remoto
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/refresh [post]
func (h *ProductHandler) Refresh(c *fiber.Ctx) error {
	if err := h.products.Load(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductList(h.products.All()))
}

// Sales godoc
// @Summary      Libro de ventas de la sesión
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.SalesListResponse
// @Router       /api/sales [get]
func (h *ProductHandler) Sales(c *fiber.Ctx) error {
	entries := h.ledger.All()
	items := make([]dto.SoldEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.SoldEntryResponse{Name: e.Name, Quantity: e.Quantity, Timestamp: e.Timestamp})
	}
	return c.JSON(dto.SalesListResponse{Items: items, Total: len(items)})
}
