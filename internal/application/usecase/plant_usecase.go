package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/domain"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

// PlantUseCase consultas read-only sobre el maestro de plantas.
type PlantUseCase struct {
	repo repository.PlantRepository
}

// NewPlantUseCase construye el caso de uso.
func NewPlantUseCase(repo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{repo: repo}
}

// List lista plantas que satisfacen el filtro.
func (uc *PlantUseCase) List(ctx context.Context, filter repository.PlantFilter) ([]dto.PlantResponse, error) {
	plants, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar plantas: %w", err)
	}
	out := make([]dto.PlantResponse, 0, len(plants))
	for i := range plants {
		out = append(out, toPlantResponse(&plants[i]))
	}
	return out, nil
}

// GetByPlantID obtiene una planta por su código. ErrNotFound si no existe.
func (uc *PlantUseCase) GetByPlantID(ctx context.Context, plantID string) (*dto.PlantResponse, error) {
	plant, err := uc.repo.GetByPlantID(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("obtener planta %s: %w", plantID, err)
	}
	if plant == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPlantResponse(plant)
	return &resp, nil
}

// StorageLocations lista las ubicaciones de almacenamiento de una planta.
// Planta sin ubicaciones devuelve lista vacía (consulta filtrada, no lookup).
func (uc *PlantUseCase) StorageLocations(ctx context.Context, plantID string) ([]dto.StorageLocationResponse, error) {
	locations, err := uc.repo.ListStorageLocations(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("listar ubicaciones de planta %s: %w", plantID, err)
	}
	out := make([]dto.StorageLocationResponse, 0, len(locations))
	for i := range locations {
		l := &locations[i]
		out = append(out, dto.StorageLocationResponse{
			ID:          l.ID,
			PlantID:     l.PlantID,
			LocationID:  l.LocationID,
			Description: l.Description,
			IsActive:    l.IsActive,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out, nil
}

func toPlantResponse(p *entity.Plant) dto.PlantResponse {
	return dto.PlantResponse{
		ID:           p.ID,
		PlantID:      p.PlantID,
		Name:         p.Name,
		PlantType:    p.PlantType,
		Country:      p.Country,
		City:         p.City,
		ERPSystem:    p.ERPSystem,
		ERPPlantCode: p.ERPPlantCode,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
