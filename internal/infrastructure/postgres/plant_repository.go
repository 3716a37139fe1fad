package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implementación de PlantRepository sobre PostgreSQL.
type PlantRepo struct {
	pool *pgxpool.Pool
}

// NewPlantRepository construye el adaptador de persistencia.
func NewPlantRepository(pool *pgxpool.Pool) *PlantRepo {
	return &PlantRepo{pool: pool}
}

const plantColumns = `
	id, plant_id, name, plant_type, country, COALESCE(city, ''),
	erp_system, COALESCE(erp_plant_code, ''), is_active, created_at, updated_at`

// List lista plantas que satisfacen el filtro conjuntivo.
func (r *PlantRepo) List(ctx context.Context, filter repository.PlantFilter) ([]entity.Plant, error) {
	var b clauseBuilder
	b.eq("country", filter.Country)
	b.eq("plant_type", filter.PlantType)
	b.boolEq("is_active", filter.IsActive)

	query := `SELECT` + plantColumns + ` FROM plants` + b.where() + ` ORDER BY plant_id`
	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	var list []entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(
			&p.ID, &p.PlantID, &p.Name, &p.PlantType, &p.Country, &p.City,
			&p.ERPSystem, &p.ERPPlantCode, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByPlantID busca una planta por código. Devuelve nil sin error si no existe.
func (r *PlantRepo) GetByPlantID(ctx context.Context, plantID string) (*entity.Plant, error) {
	query := `SELECT` + plantColumns + ` FROM plants WHERE plant_id = $1`
	var p entity.Plant
	err := r.pool.QueryRow(ctx, query, plantID).Scan(
		&p.ID, &p.PlantID, &p.Name, &p.PlantType, &p.Country, &p.City,
		&p.ERPSystem, &p.ERPPlantCode, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant by id: %w", err)
	}
	return &p, nil
}

// ListStorageLocations lista las ubicaciones de una planta.
func (r *PlantRepo) ListStorageLocations(ctx context.Context, plantID string) ([]entity.StorageLocation, error) {
	query := `
		SELECT id, plant_id, location_id, COALESCE(description, ''), is_active, created_at
		FROM storage_locations WHERE plant_id = $1 ORDER BY location_id`
	rows, err := r.pool.Query(ctx, query, plantID)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()

	var list []entity.StorageLocation
	for rows.Next() {
		var l entity.StorageLocation
		if err := rows.Scan(&l.ID, &l.PlantID, &l.LocationID, &l.Description, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
