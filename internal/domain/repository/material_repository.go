package repository

import (
	"context"

	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// MaterialFilter filtro conjuntivo sobre el maestro de materiales.
// IsActive nil = sin restricción (el boundary aplica true por defecto).
type MaterialFilter struct {
	Category      string
	MaterialGroup string
	ERPSystem     string
	IsActive      *bool
}

// MaterialRepository define el puerto de persistencia para el maestro de materiales (DIP).
type MaterialRepository interface {
	List(ctx context.Context, filter MaterialFilter) ([]entity.Material, error)
	// GetByMaterialID busca por código de material; devuelve nil sin error si no existe.
	GetByMaterialID(ctx context.Context, materialID string) (*entity.Material, error)
}
