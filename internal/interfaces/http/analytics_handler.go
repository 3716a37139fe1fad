package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/inventory-health/internal/application/analytics"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
)

// AnalyticsHandler maneja los endpoints de analítica ejecutiva.
type AnalyticsHandler struct {
	uc *appanalytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// KPIs godoc
// @Summary      KPIs ejecutivos
// @Tags         analytics
// @Produce      json
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta"
// @Success      200  {object}  dto.ExecutiveKPIs
// @Router       /api/analytics/kpis [get]
func (h *AnalyticsHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.uc.ExecutiveKPIs(c.Context(), c.Query("plant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Trends godoc
// @Summary      Tendencias de inventario
// @Tags         analytics
// @Produce      json
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta"
// @Param        days      query  int     false  "Ventana en días (default 30)"
// @Success      200  {object}  dto.InventoryTrends
// @Router       /api/analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	out, err := h.uc.Trends(c.Context(), c.Query("plant_id"), c.QueryInt("days", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Comparison godoc
// @Summary      Comparación entre plantas
// @Tags         analytics
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.PlantComparison
// @Router       /api/analytics/comparison [get]
func (h *AnalyticsHandler) Comparison(c *fiber.Ctx) error {
	out, err := h.uc.PlantComparison(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
