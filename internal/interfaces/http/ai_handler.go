package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/application/forecast"
	"github.com/tu-usuario/inventory-health/internal/application/optimization"
	"github.com/tu-usuario/inventory-health/internal/domain"
)

// AIHandler maneja los endpoints del módulo de AI: pronóstico sintético de
// demanda y recomendaciones de optimización simuladas.
type AIHandler struct {
	forecaster *forecast.Generator
	optimizer  *optimization.UseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(forecaster *forecast.Generator, optimizer *optimization.UseCase) *AIHandler {
	return &AIHandler{forecaster: forecaster, optimizer: optimizer}
}

// Forecast godoc
// @Summary      Pronóstico de demanda
// @Description  Con material_id y plant_id devuelve la serie diaria simulada;
// @Description  sin ellos devuelve el pronóstico general agregado.
// @Tags         ai
// @Produce      json
// @Security     Bearer
// @Param        material_id   query  string  false  "Código de material"
// @Param        plant_id      query  string  false  "Código de planta"
// @Param        horizon_days  query  int     false  "Horizonte en días (default 30)"
// @Success      200  {object}  dto.MaterialForecastResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ai/forecast [get]
func (h *AIHandler) Forecast(c *fiber.Ctx) error {
	materialID := c.Query("material_id")
	plantID := c.Query("plant_id")
	horizonDays := c.QueryInt("horizon_days", forecast.DefaultHorizonDays)

	if materialID != "" && plantID != "" {
		out, err := h.forecaster.MaterialForecast(c.Context(), materialID, plantID, horizonDays)
		if err != nil {
			return h.forecastError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.forecaster.GeneralForecast(c.Context(), horizonDays)
	if err != nil {
		return h.forecastError(c, err)
	}
	return c.JSON(out)
}

func (h *AIHandler) forecastError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidHorizon) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "horizon_days debe ser un entero no negativo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Optimization godoc
// @Summary      Recomendaciones de optimización de inventario
// @Description  Con plant_id devuelve la optimización de esa planta; sin él,
// @Description  la optimización global agregada.
// @Tags         ai
// @Produce      json
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta"
// @Success      200  {object}  dto.PlantOptimizationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ai/optimization [get]
func (h *AIHandler) Optimization(c *fiber.Ctx) error {
	plantID := c.Query("plant_id")
	if plantID != "" {
		out, err := h.optimizer.PlantOptimization(c.Context(), plantID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.optimizer.GlobalOptimization(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReorderPoint godoc
// @Summary      Punto de reorden óptimo simulado
// @Tags         ai
// @Produce      json
// @Security     Bearer
// @Param        material_id  query  string  true  "Código de material"
// @Param        plant_id     query  string  true  "Código de planta"
// @Success      200  {object}  dto.ReorderPointResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ai/reorder-point [get]
func (h *AIHandler) ReorderPoint(c *fiber.Ctx) error {
	materialID := c.Query("material_id")
	plantID := c.Query("plant_id")
	if materialID == "" || plantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_id y plant_id son requeridos"})
	}
	out, err := h.optimizer.ReorderPoint(c.Context(), materialID, plantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Insights de negocio
// @Tags         ai
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.InsightsResponse
// @Router       /api/ai/insights [get]
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	out, err := h.optimizer.Insights(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AnomalyDetection godoc
// @Summary      Detección de anomalías
// @Tags         ai
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.AnomalyDetectionResponse
// @Router       /api/ai/anomaly-detection [get]
func (h *AIHandler) AnomalyDetection(c *fiber.Ctx) error {
	out, err := h.optimizer.AnomalyDetection(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
