package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/session"
	"github.com/jhoicas/inventario-panel/internal/application/store"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Products *store.ProductStore
	Users    *store.UserStore
	Ledger   *store.SalesLedger
	Session  *session.Manager
}

// Router registra las rutas del panel. Solo el dashboard exige la bandera de
// sesión, igual que en el cliente original; las vistas de gestión quedan
// abiertas (autenticación real fuera de alcance).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.Session)
	sessionGroup := api.Group("/session")
	sessionGroup.Post("/login", sessionHandler.Login)
	sessionGroup.Post("/logout", sessionHandler.Logout)
	api.Get("/session", sessionHandler.Current)

	// Dashboard (requiere sesión)
	dashboardHandler := NewDashboardHandler(deps.Products)
	dashboard := api.Group("/dashboard", SessionRequired(deps.Session))
	dashboard.Get("/", dashboardHandler.Overview)
	dashboard.Get("/search", dashboardHandler.Search)

	// Productos + libro de ventas
	productHandler := NewProductHandler(deps.Products, deps.Ledger)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/refresh", productHandler.Refresh)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/buy", productHandler.Buy)
	products.Post("/:id/sell", productHandler.Sell)
	api.Get("/sales", productHandler.Sales)

	// Usuarios
	userHandler := NewUserHandler(deps.Users)
	users := api.Group("/users")
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Post("/refresh", userHandler.Refresh)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
