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

	"github.com/itael/inventory-products-api/internal/application/auth"
	"github.com/itael/inventory-products-api/internal/application/usecase"
	"github.com/itael/inventory-products-api/internal/i18n"
	infrakv "github.com/itael/inventory-products-api/internal/infrastructure/kvstore"
	httpRouter "github.com/itael/inventory-products-api/internal/interfaces/http"
	"github.com/itael/inventory-products-api/internal/store"
	"github.com/itael/inventory-products-api/pkg/config"
	"github.com/itael/inventory-products-api/pkg/logger"
	"github.com/itael/inventory-products-api/pkg/metrics"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, err := infrakv.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento clave-valor")
	}

	latency := cfg.Sim.Latency()
	// Cada constructor fija su clave de persistencia por defecto.
	storeOpts := store.Options{KV: kv, Latency: latency, Logger: log}
	products := store.NewProductStore(ctx, storeOpts)
	users := store.NewUserStore(ctx, storeOpts)
	roles := store.NewRoleStore(ctx, storeOpts)
	permissions := store.NewPermissionStore(ctx, storeOpts)

	view := store.NewUserRoleView(users, roles)
	defer view.Close()

	translator := i18n.New(ctx, kv, cfg.I18n.DefaultLocale, log)

	authUC := auth.New(ctx, auth.Options{
		Users: users,
		KV:    kv,
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Latency: latency,
		Logger:  log,
	})

	productUC := usecase.NewProductUseCase(products)
	userUC := usecase.NewUserUseCase(users, view)
	roleUC := usecase.NewRoleUseCase(roles, permissions)
	dashboardUC := usecase.NewDashboardUseCase(products, users, roles, permissions)

	httpMetrics := metrics.NewHTTPMetrics(cfg.App.Name)

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
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		UserUC:      userUC,
		RoleUC:      roleUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Translator:  translator,
		Metrics:     httpMetrics,
		JWTSecret:   cfg.JWT.Secret,
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
