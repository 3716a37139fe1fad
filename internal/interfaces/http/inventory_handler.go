package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	appinventory "github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

// InventoryHandler maneja los endpoints de inventario sincronizado:
// niveles, transacciones, alertas, KPIs y resumen.
type InventoryHandler struct {
	uc *appinventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListLevels godoc
// @Summary      Niveles de inventario
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id    query  string  false  "Código de planta"
// @Param        material_id query  string  false  "Código de material"
// @Param        stock_type  query  string  false  "unrestricted | quality_inspection | blocked"
// @Param        erp_system  query  string  false  "Sistema ERP de origen"
// @Success      200  {array}   dto.InventoryLevelResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/levels [get]
func (h *InventoryHandler) ListLevels(c *fiber.Ctx) error {
	filter := repository.LevelFilter{
		PlantID:    c.Query("plant_id"),
		MaterialID: c.Query("material_id"),
		StockType:  c.Query("stock_type"),
		ERPSystem:  c.Query("erp_system"),
	}
	out, err := h.uc.ListLevels(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLevelsByPlant godoc
// @Summary      Niveles de inventario de una planta
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id    path   string  true   "Código de planta"
// @Param        stock_type  query  string  false  "Tipo de stock"
// @Success      200  {array}   dto.InventoryLevelResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/levels/{plant_id} [get]
func (h *InventoryHandler) ListLevelsByPlant(c *fiber.Ctx) error {
	filter := repository.LevelFilter{
		PlantID:   c.Params("plant_id"),
		StockType: c.Query("stock_type"),
	}
	out, err := h.uc.ListLevels(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Historial de transacciones de inventario
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id          query  string  false  "Código de planta"
// @Param        material_id       query  string  false  "Código de material"
// @Param        transaction_type  query  string  false  "goods_receipt | goods_issue | transfer | adjustment"
// @Param        start_date        query  string  false  "YYYY-MM-DD"
// @Param        end_date          query  string  false  "YYYY-MM-DD"
// @Param        limit             query  int     false  "Máximo de registros (default 100)"
// @Success      200  {array}   dto.InventoryTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		PlantID:         c.Query("plant_id"),
		MaterialID:      c.Query("material_id"),
		TransactionType: c.Query("transaction_type"),
		Limit:           c.QueryInt("limit", 0),
	}
	var err error
	if filter.StartDate, err = parseDateQuery(c, "start_date"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date debe ser YYYY-MM-DD"})
	}
	if filter.EndDate, err = parseDateQuery(c, "end_date"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.ListTransactions(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAlerts godoc
// @Summary      Alertas de inventario
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id    query  string  false  "Código de planta"
// @Param        material_id query  string  false  "Código de material"
// @Param        alert_type  query  string  false  "Tipo de alerta"
// @Param        severity    query  string  false  "low | medium | high | critical"
// @Param        is_active   query  bool    false  "Default true; false incluye resueltas"
// @Success      200  {array}   dto.InventoryAlertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) ListAlerts(c *fiber.Ctx) error {
	// Solo alertas activas salvo que el caller lo pida explícitamente.
	isActive, err := parseBoolQuery(c, "is_active", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active debe ser true o false"})
	}
	filter := repository.AlertFilter{
		PlantID:    c.Query("plant_id"),
		MaterialID: c.Query("material_id"),
		AlertType:  c.Query("alert_type"),
		Severity:   c.Query("severity"),
		IsActive:   isActive,
	}
	out, err := h.uc.ListAlerts(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetKPIs godoc
// @Summary      KPIs de inventario
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta (vacío = todas)"
// @Success      200  {object}  dto.InventoryKPIs
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/kpis [get]
func (h *InventoryHandler) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.uc.GetKPIs(c.Context(), c.Query("plant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(kpis)
}

// GetSummary godoc
// @Summary      Resumen de inventario por tipo de stock
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta (vacío = todas)"
// @Success      200  {object}  dto.InventorySummary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), c.Query("plant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// GetSummaryReport godoc
// @Summary      Informe PDF del resumen ejecutivo
// @Tags         inventory
// @Produce      application/pdf
// @Security     Bearer
// @Param        plant_id  query  string  false  "Código de planta (vacío = todas)"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary/report [get]
func (h *InventoryHandler) GetSummaryReport(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GetSummaryReport(c.Context(), c.Query("plant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-inventario.pdf"`)
	return c.Send(pdfBytes)
}

// ── Helpers de query params ───────────────────────────────────────────────────

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseBoolQuery(c *fiber.Ctx, name string, def bool) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return &def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
