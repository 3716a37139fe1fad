// Package optimization expone recomendaciones de optimización de inventario.
//
// Todos los payloads son estructuras ilustrativas fijas: aún no existe un
// algoritmo real detrás. La forma (listas de recomendaciones con sus campos)
// y los scores agregados se preservan como constantes con nombre.
package optimization

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
)

// Scores y ahorros ilustrativos. No se derivan de ningún dato de entrada.
const (
	plantOptimizationScore  = 0.78
	globalOptimizationScore = 0.82
	plantsAnalyzed          = 5
	materialsAnalyzed       = 1250
)

var (
	plantPotentialSavings  = decimal.NewFromInt(125000)
	globalPotentialSavings = decimal.NewFromInt(450000)
)

// Parámetros fijos del cálculo simulado de punto de reorden.
const (
	currentReorderPoint = 100.0
	optimalReorderPoint = 85.0
	safetyStock         = 25.0
	leadTimeDays        = 7
	demandVariability   = 0.15
	reorderConfidence   = 0.95
)

// UseCase genera las recomendaciones (placeholder hasta tener un optimizador real).
type UseCase struct {
	now func() time.Time
}

// NewUseCase construye el caso de uso. El reloj es inyectable para tests.
func NewUseCase() *UseCase {
	return &UseCase{now: time.Now}
}

// NewUseCaseWithClock construye el caso de uso con reloj explícito.
func NewUseCaseWithClock(now func() time.Time) *UseCase {
	return &UseCase{now: now}
}

// PlantOptimization recomendaciones para una planta concreta.
func (uc *UseCase) PlantOptimization(_ context.Context, plantID string) (*dto.PlantOptimizationResponse, error) {
	return &dto.PlantOptimizationResponse{
		PlantID:           plantID,
		OptimizationScore: plantOptimizationScore,
		PotentialSavings:  plantPotentialSavings,
		Recommendations: []dto.RecommendationDTO{
			{
				Type:              "reorder_point_optimization",
				MaterialsAffected: 23,
				PotentialImpact:   "Reduce stock-outs by 15%",
				Priority:          "high",
			},
			{
				Type:              "safety_stock_reduction",
				MaterialsAffected: 45,
				PotentialImpact:   "Reduce inventory costs by 8%",
				Priority:          "medium",
			},
			{
				Type:              "supplier_consolidation",
				MaterialsAffected: 12,
				PotentialImpact:   "Reduce lead times by 20%",
				Priority:          "low",
			},
		},
		LastUpdated: uc.now(),
	}, nil
}

// GlobalOptimization recomendaciones agregadas de todas las plantas.
func (uc *UseCase) GlobalOptimization(_ context.Context) (*dto.GlobalOptimizationResponse, error) {
	return &dto.GlobalOptimizationResponse{
		TotalOptimizationScore: globalOptimizationScore,
		TotalPotentialSavings:  globalPotentialSavings,
		PlantsAnalyzed:         plantsAnalyzed,
		MaterialsAnalyzed:      materialsAnalyzed,
		KeyRecommendations: []dto.GlobalRecommendationDTO{
			{
				Category:           "inventory_reduction",
				Description:        "Reduce safety stock levels for 67 materials",
				PotentialSavings:   decimal.NewFromInt(180000),
				ImplementationTime: "3 months",
			},
			{
				Category:           "demand_forecasting",
				Description:        "Implement ML-based demand forecasting",
				PotentialSavings:   decimal.NewFromInt(120000),
				ImplementationTime: "6 months",
			},
			{
				Category:           "supplier_management",
				Description:        "Optimize supplier lead times and costs",
				PotentialSavings:   decimal.NewFromInt(150000),
				ImplementationTime: "4 months",
			},
		},
		LastUpdated: uc.now(),
	}, nil
}

// ReorderPoint cálculo simulado del punto de reorden óptimo de un material.
func (uc *UseCase) ReorderPoint(_ context.Context, materialID, plantID string) (*dto.ReorderPointResponse, error) {
	return &dto.ReorderPointResponse{
		MaterialID:          materialID,
		PlantID:             plantID,
		CurrentReorderPoint: currentReorderPoint,
		OptimalReorderPoint: optimalReorderPoint,
		SafetyStock:         safetyStock,
		LeadTimeDays:        leadTimeDays,
		DemandVariability:   demandVariability,
		ConfidenceLevel:     reorderConfidence,
		LastUpdated:         uc.now(),
	}, nil
}

// Insights insights de negocio ilustrativos.
func (uc *UseCase) Insights(_ context.Context) (*dto.InsightsResponse, error) {
	return &dto.InsightsResponse{
		KeyInsights: []string{
			"Inventory turnover rate is 15% below industry average",
			"Stock-out risk is high for 23 materials",
			"Overstock detected for 45 materials",
			"Demand seasonality detected for 67 materials",
		},
		Recommendations: []string{
			"Implement dynamic reorder points for high-demand items",
			"Review safety stock levels for critical materials",
			"Consider supplier diversification for long-lead-time items",
		},
		LastUpdated: uc.now(),
	}, nil
}

// AnomalyDetection resultado de detección de anomalías (vacío fijo).
func (uc *UseCase) AnomalyDetection(_ context.Context) (*dto.AnomalyDetectionResponse, error) {
	return &dto.AnomalyDetectionResponse{
		Anomalies:     []string{},
		TotalDetected: 0,
		LastUpdated:   uc.now(),
	}, nil
}
