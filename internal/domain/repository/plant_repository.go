package repository

import (
	"context"

	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// PlantFilter filtro conjuntivo sobre el maestro de plantas.
type PlantFilter struct {
	Country   string
	PlantType string
	IsActive  *bool
}

// PlantRepository define el puerto de persistencia para plantas y ubicaciones (DIP).
type PlantRepository interface {
	List(ctx context.Context, filter PlantFilter) ([]entity.Plant, error)
	// GetByPlantID busca por código de planta; devuelve nil sin error si no existe.
	GetByPlantID(ctx context.Context, plantID string) (*entity.Plant, error)
	ListStorageLocations(ctx context.Context, plantID string) ([]entity.StorageLocation, error)
}
