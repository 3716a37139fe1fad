package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/application/usecase"
	"github.com/tu-usuario/inventory-health/internal/domain"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

// PlantHandler maneja el maestro de plantas y ubicaciones de almacenamiento.
type PlantHandler struct {
	uc *usecase.PlantUseCase
}

// NewPlantHandler construye el handler.
func NewPlantHandler(uc *usecase.PlantUseCase) *PlantHandler {
	return &PlantHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantas
// @Tags         plants
// @Produce      json
// @Security     Bearer
// @Param        country     query  string  false  "País"
// @Param        plant_type  query  string  false  "Tipo de planta"
// @Param        is_active   query  bool    false  "Default true"
// @Success      200  {array}   dto.PlantResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	isActive, err := parseBoolQuery(c, "is_active", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active debe ser true o false"})
	}
	filter := repository.PlantFilter{
		Country:   c.Query("country"),
		PlantType: c.Query("plant_type"),
		IsActive:  isActive,
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByPlantID godoc
// @Summary      Detalle de una planta
// @Tags         plants
// @Produce      json
// @Security     Bearer
// @Param        plant_id  path  string  true  "Código de planta"
// @Success      200  {object}  dto.PlantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant_id} [get]
func (h *PlantHandler) GetByPlantID(c *fiber.Ctx) error {
	out, err := h.uc.GetByPlantID(c.Context(), c.Params("plant_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "planta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StorageLocations godoc
// @Summary      Ubicaciones de almacenamiento de una planta
// @Tags         plants
// @Produce      json
// @Security     Bearer
// @Param        plant_id  path  string  true  "Código de planta"
// @Success      200  {array}   dto.StorageLocationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant_id}/storage-locations [get]
func (h *PlantHandler) StorageLocations(c *fiber.Ctx) error {
	out, err := h.uc.StorageLocations(c.Context(), c.Params("plant_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
