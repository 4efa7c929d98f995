package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-panel/internal/application/session"
	"github.com/jhoicas/inventario-panel/internal/application/store"
	"github.com/jhoicas/inventario-panel/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/inventario-panel/internal/interfaces/http"
	"github.com/jhoicas/inventario-panel/pkg/config"
	"github.com/jhoicas/inventario-panel/pkg/logger"
	"github.com/jhoicas/inventario-panel/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("remote", cfg.Remote.BaseURL).
		Msg("iniciando panel")

	metrics.Register()

	remote := rest.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout(), log)
	ledger := store.NewSalesLedger()
	products := store.NewProductStore(remote, ledger, log)
	users := store.NewUserStore(remote, log)
	sessions := session.NewManager()

	// Carga inicial de ambos espejos. Un fallo se registra y no es fatal:
	// el panel arranca con listas vacías y el usuario puede resincronizar.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Remote.Timeout())
	if err := products.Load(loadCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de productos")
	}
	if err := users.Load(loadCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de usuarios")
	}
	cancelLoad()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Products: products,
		Users:    users,
		Ledger:   ledger,
		Session:  sessions,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
