package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/dto"
	"github.com/jhoicas/inventario-panel/internal/application/store"
)

// DashboardHandler maneja la vista del dashboard: resumen de stock y búsqueda.
// Ambas rutas exigen la bandera de sesión.
type DashboardHandler struct {
	products *store.ProductStore
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(products *store.ProductStore) *DashboardHandler {
	return &DashboardHandler{products: products}
}

// Overview godoc
// @Summary      Resumen del dashboard
// @Description  Todos los productos sin importar la cantidad, el total de unidades y la serie de la gráfica de stock.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{
		User:          GetSessionUser(c),
		Products:      toProductList(h.products.All()).Items,
		TotalQuantity: h.products.TotalQuantity(),
		Chart:         toChartResponse(h.products.ChartSeries()),
	})
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Description  Coincidencia de subcadena insensible a mayúsculas sobre el nombre; una query vacía no coincide con nada.
// @Tags         dashboard
// @Produce      json
// @Param        q    query  string  true  "Texto a buscar"
// @Success      200  {object}  dto.SearchResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/search [get]
func (h *DashboardHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	return c.JSON(dto.SearchResponse{
		Query: query,
		Items: toProductList(h.products.Search(query)).Items,
	})
}
