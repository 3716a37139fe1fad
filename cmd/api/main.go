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
	appanalytics "github.com/tu-usuario/inventory-health/internal/application/analytics"
	"github.com/tu-usuario/inventory-health/internal/application/auth"
	"github.com/tu-usuario/inventory-health/internal/application/forecast"
	appinventory "github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/application/optimization"
	"github.com/tu-usuario/inventory-health/internal/application/usecase"
	infracache "github.com/tu-usuario/inventory-health/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/inventory-health/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventory-health/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventory-health/internal/interfaces/http"
	"github.com/tu-usuario/inventory-health/pkg/config"
	"github.com/tu-usuario/inventory-health/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	inventoryRepo := postgres.NewInventoryRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Cache de KPIs: si Redis no responde se degrada al noop y la API
	// sigue sirviendo desde PostgreSQL.
	kpiCache, err := infracache.NewKPICache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, cache de KPIs deshabilitado")
		kpiCache = infracache.NoopKPICache{}
	}

	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	inventoryUC := appinventory.NewUseCase(inventoryRepo, kpiCache, pdfGenerator, log)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	plantUC := usecase.NewPlantUseCase(plantRepo)
	forecaster := forecast.NewGenerator(log)
	optimizerUC := optimization.NewUseCase()
	analyticsUC := appanalytics.NewUseCase()
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Inventory Health API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		MaterialUC:  materialUC,
		PlantUC:     plantUC,
		Forecaster:  forecaster,
		OptimizerUC: optimizerUC,
		AnalyticsUC: analyticsUC,
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
