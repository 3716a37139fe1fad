package repository

import (
	"context"

	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios del dashboard (DIP).
type UserRepository interface {
	// FindByUsername devuelve nil sin error si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
