package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/application/usecase"
	"github.com/tu-usuario/inventory-health/internal/domain"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

// MaterialHandler maneja el maestro de materiales.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiales
// @Tags         materials
// @Produce      json
// @Security     Bearer
// @Param        category        query  string  false  "Categoría"
// @Param        material_group  query  string  false  "Grupo de materiales"
// @Param        erp_system      query  string  false  "Sistema ERP de origen"
// @Param        is_active       query  bool    false  "Default true"
// @Success      200  {array}   dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	isActive, err := parseBoolQuery(c, "is_active", true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active debe ser true o false"})
	}
	filter := repository.MaterialFilter{
		Category:      c.Query("category"),
		MaterialGroup: c.Query("material_group"),
		ERPSystem:     c.Query("erp_system"),
		IsActive:      isActive,
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías de materiales
// @Tags         materials
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.MaterialCategoriesResponse
// @Router       /api/materials/categories [get]
func (h *MaterialHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}

// GetByMaterialID godoc
// @Summary      Detalle de un material
// @Tags         materials
// @Produce      json
// @Security     Bearer
// @Param        material_id  path  string  true  "Código de material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{material_id} [get]
func (h *MaterialHandler) GetByMaterialID(c *fiber.Ctx) error {
	out, err := h.uc.GetByMaterialID(c.Context(), c.Params("material_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
