package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/inventory-health/internal/application/analytics"
	"github.com/tu-usuario/inventory-health/internal/application/auth"
	"github.com/tu-usuario/inventory-health/internal/application/forecast"
	appinventory "github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/application/optimization"
	"github.com/tu-usuario/inventory-health/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *appinventory.UseCase
	MaterialUC  *usecase.MaterialUseCase
	PlantUC     *usecase.PlantUseCase
	Forecaster  *forecast.Generator
	OptimizerUC *optimization.UseCase
	AnalyticsUC *appanalytics.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: registro y login públicos, perfil protegido
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/levels", inventoryHandler.ListLevels)
	invGroup.Get("/levels/:plant_id", inventoryHandler.ListLevelsByPlant)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)
	invGroup.Get("/alerts", inventoryHandler.ListAlerts)
	invGroup.Get("/kpis", inventoryHandler.GetKPIs)
	invGroup.Get("/summary", inventoryHandler.GetSummary)
	invGroup.Get("/summary/report", inventoryHandler.GetSummaryReport)

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/categories", materialHandler.Categories)
	materials.Get("/:material_id", materialHandler.GetByMaterialID)

	// Plants (protegido)
	plants := protected.Group("/plants")
	plantHandler := NewPlantHandler(deps.PlantUC)
	plants.Get("/", plantHandler.List)
	plants.Get("/:plant_id", plantHandler.GetByPlantID)
	plants.Get("/:plant_id/storage-locations", plantHandler.StorageLocations)

	// AI (protegido)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.Forecaster, deps.OptimizerUC)
	ai.Get("/forecast", aiHandler.Forecast)
	ai.Get("/optimization", aiHandler.Optimization)
	ai.Get("/reorder-point", aiHandler.ReorderPoint)
	ai.Get("/insights", aiHandler.Insights)
	ai.Get("/anomaly-detection", aiHandler.AnomalyDetection)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/kpis", analyticsHandler.KPIs)
	analyticsGroup.Get("/trends", analyticsHandler.Trends)
	analyticsGroup.Get("/comparison", analyticsHandler.Comparison)
}
