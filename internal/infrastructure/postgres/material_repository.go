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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository construye el adaptador de persistencia.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

const materialColumns = `
	id, material_id, description, category, material_group, base_unit,
	standard_price, erp_system, COALESCE(erp_material_code, ''),
	is_active, created_at, updated_at`

// List lista materiales que satisfacen el filtro conjuntivo.
func (r *MaterialRepo) List(ctx context.Context, filter repository.MaterialFilter) ([]entity.Material, error) {
	var b clauseBuilder
	b.eq("category", filter.Category)
	b.eq("material_group", filter.MaterialGroup)
	b.eq("erp_system", filter.ERPSystem)
	b.boolEq("is_active", filter.IsActive)

	query := `SELECT` + materialColumns + ` FROM materials` + b.where() + ` ORDER BY material_id`
	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []entity.Material
	for rows.Next() {
		var m entity.Material
		if err := scanMaterial(rows, &m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByMaterialID busca un material por código. Devuelve nil sin error si no existe.
func (r *MaterialRepo) GetByMaterialID(ctx context.Context, materialID string) (*entity.Material, error) {
	query := `SELECT` + materialColumns + ` FROM materials WHERE material_id = $1`
	var m entity.Material
	err := scanMaterial(r.pool.QueryRow(ctx, query, materialID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner, m *entity.Material) error {
	err := row.Scan(
		&m.ID, &m.MaterialID, &m.Description, &m.Category, &m.MaterialGroup,
		&m.BaseUnit, &m.StandardPrice, &m.ERPSystem, &m.ERPMaterialCode,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan material: %w", err)
	}
	return nil
}
