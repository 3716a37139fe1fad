package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPointDTO punto diario del pronóstico de demanda.
// La fecha se serializa como YYYY-MM-DD (igual que la serie del modelo).
type ForecastPointDTO struct {
	Date            string  `json:"date"`
	PredictedDemand float64 `json:"predicted_demand"`
	ConfidenceLower float64 `json:"confidence_lower"`
	ConfidenceUpper float64 `json:"confidence_upper"`
}

// MaterialForecastResponse pronóstico de demanda para un material/planta.
// ModelAccuracy y ConfidenceLevel son constantes ilustrativas del modelo
// simulado, no métricas derivadas de datos.
type MaterialForecastResponse struct {
	MaterialID          string             `json:"material_id"`
	PlantID             string             `json:"plant_id"`
	ForecastHorizonDays int                `json:"forecast_horizon_days"`
	ForecastData        []ForecastPointDTO `json:"forecast_data"`
	ModelAccuracy       float64            `json:"model_accuracy"`
	ConfidenceLevel     float64            `json:"confidence_level"`
	ModelVersion        string             `json:"model_version"`
	LastUpdated         time.Time          `json:"last_updated"`
}

// GeneralForecastResponse pronóstico agregado cuando no se indica material/planta.
// Payload de forma fija, parametrizado solo por el horizonte eco.
type GeneralForecastResponse struct {
	TotalDemandForecast int       `json:"total_demand_forecast"`
	DemandTrend         string    `json:"demand_trend"`
	SeasonalityDetected bool      `json:"seasonality_detected"`
	PeakDemandPeriod    string    `json:"peak_demand_period"`
	ForecastHorizonDays int       `json:"forecast_horizon_days"`
	LastUpdated         time.Time `json:"last_updated"`
}

// RecommendationDTO recomendación de optimización por planta.
type RecommendationDTO struct {
	Type              string `json:"type"`
	MaterialsAffected int    `json:"materials_affected"`
	PotentialImpact   string `json:"potential_impact"`
	Priority          string `json:"priority"`
}

// PlantOptimizationResponse recomendaciones para una planta concreta.
type PlantOptimizationResponse struct {
	PlantID           string              `json:"plant_id"`
	OptimizationScore float64             `json:"optimization_score"`
	PotentialSavings  decimal.Decimal     `json:"potential_savings"`
	Recommendations   []RecommendationDTO `json:"recommendations"`
	LastUpdated       time.Time           `json:"last_updated"`
}

// GlobalRecommendationDTO recomendación de optimización global.
type GlobalRecommendationDTO struct {
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	PotentialSavings   decimal.Decimal `json:"potential_savings"`
	ImplementationTime string          `json:"implementation_time"`
}

// GlobalOptimizationResponse recomendaciones agregadas de todas las plantas.
type GlobalOptimizationResponse struct {
	TotalOptimizationScore float64                   `json:"total_optimization_score"`
	TotalPotentialSavings  decimal.Decimal           `json:"total_potential_savings"`
	PlantsAnalyzed         int                       `json:"plants_analyzed"`
	MaterialsAnalyzed      int                       `json:"materials_analyzed"`
	KeyRecommendations     []GlobalRecommendationDTO `json:"key_recommendations"`
	LastUpdated            time.Time                 `json:"last_updated"`
}

// ReorderPointResponse cálculo simulado de punto de reorden óptimo.
type ReorderPointResponse struct {
	MaterialID          string    `json:"material_id"`
	PlantID             string    `json:"plant_id"`
	CurrentReorderPoint float64   `json:"current_reorder_point"`
	OptimalReorderPoint float64   `json:"optimal_reorder_point"`
	SafetyStock         float64   `json:"safety_stock"`
	LeadTimeDays        int       `json:"lead_time_days"`
	DemandVariability   float64   `json:"demand_variability"`
	ConfidenceLevel     float64   `json:"confidence_level"`
	LastUpdated         time.Time `json:"last_updated"`
}

// InsightsResponse insights de negocio ilustrativos.
type InsightsResponse struct {
	KeyInsights     []string  `json:"key_insights"`
	Recommendations []string  `json:"recommendations"`
	LastUpdated     time.Time `json:"last_updated"`
}

// AnomalyDetectionResponse resultado de detección de anomalías (vacío fijo).
type AnomalyDetectionResponse struct {
	Anomalies     []string  `json:"anomalies"`
	TotalDetected int       `json:"total_detected"`
	LastUpdated   time.Time `json:"last_updated"`
}
