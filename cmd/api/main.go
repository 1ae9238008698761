package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/angelart-catalog/internal/application/admin"
	"github.com/tu-usuario/angelart-catalog/internal/application/auth"
	"github.com/tu-usuario/angelart-catalog/internal/application/catalog"
	"github.com/tu-usuario/angelart-catalog/internal/application/inquiry"
	"github.com/tu-usuario/angelart-catalog/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/angelart-catalog/internal/interfaces/http"
	"github.com/tu-usuario/angelart-catalog/pkg/config"
	"github.com/tu-usuario/angelart-catalog/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer db.Close()

	kv := sqlite.NewKVRepository(db)
	catalogStore := catalog.NewStore(kv, log)
	gate := auth.NewGate(kv, cfg.Admin.Email, log)
	controller := admin.NewController(catalogStore, gate)
	inquiries := inquiry.NewUseCase(kv, log)

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
		Title:    "Angel Art World Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:   catalogStore,
		Admin:     controller,
		Gate:      gate,
		Inquiries: inquiries,
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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

	log.Info().Msg("aplicación detenida")
}
