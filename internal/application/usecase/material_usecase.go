package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/domain"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

// MaterialUseCase consultas read-only sobre el maestro de materiales.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// List lista materiales que satisfacen el filtro.
func (uc *MaterialUseCase) List(ctx context.Context, filter repository.MaterialFilter) ([]dto.MaterialResponse, error) {
	materials, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar materiales: %w", err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, toMaterialResponse(&materials[i]))
	}
	return out, nil
}

// GetByMaterialID obtiene un material por su código. ErrNotFound si no existe.
func (uc *MaterialUseCase) GetByMaterialID(ctx context.Context, materialID string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByMaterialID(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("obtener material %s: %w", materialID, err)
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMaterialResponse(material)
	return &resp, nil
}

// Categories devuelve las categorías de material conocidas.
func (uc *MaterialUseCase) Categories() dto.MaterialCategoriesResponse {
	return dto.MaterialCategoriesResponse{Categories: entity.MaterialCategories}
}

func toMaterialResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:              m.ID,
		MaterialID:      m.MaterialID,
		Description:     m.Description,
		Category:        m.Category,
		MaterialGroup:   m.MaterialGroup,
		BaseUnit:        m.BaseUnit,
		StandardPrice:   m.StandardPrice,
		ERPSystem:       m.ERPSystem,
		ERPMaterialCode: m.ERPMaterialCode,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
