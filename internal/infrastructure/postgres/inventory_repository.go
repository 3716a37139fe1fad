package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación read-only de InventoryRepository sobre PostgreSQL.
// Las tablas las escribe el pipeline de sincronización ERP; aquí solo se consulta.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de persistencia.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

const levelColumns = `
	id, material_id, plant_id, COALESCE(storage_location, ''), stock_type,
	COALESCE(batch_number, ''), available_quantity, reserved_quantity,
	total_quantity, unit_of_measure, erp_system,
	COALESCE(erp_material_code, ''), COALESCE(erp_plant_code, ''),
	COALESCE(quality_status, ''), shelf_life_expiry, last_updated, created_at`

// ListLevels devuelve los niveles que satisfacen el filtro conjuntivo.
func (r *InventoryRepo) ListLevels(ctx context.Context, filter repository.LevelFilter) ([]entity.InventoryLevel, error) {
	var b clauseBuilder
	b.eq("plant_id", filter.PlantID)
	b.eq("material_id", filter.MaterialID)
	b.eq("stock_type", filter.StockType)
	b.eq("erp_system", filter.ERPSystem)

	query := `SELECT` + levelColumns + ` FROM inventory_levels` + b.where()
	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(
			&l.ID, &l.MaterialID, &l.PlantID, &l.StorageLocation, &l.StockType,
			&l.BatchNumber, &l.AvailableQuantity, &l.ReservedQuantity,
			&l.TotalQuantity, &l.UnitOfMeasure, &l.ERPSystem,
			&l.ERPMaterialCode, &l.ERPPlantCode,
			&l.QualityStatus, &l.ShelfLifeExpiry, &l.LastUpdated, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// ListTransactions devuelve transacciones por fecha descendente, acotadas por Limit.
func (r *InventoryRepo) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]entity.InventoryTransaction, error) {
	var b clauseBuilder
	b.eq("plant_id", filter.PlantID)
	b.eq("material_id", filter.MaterialID)
	b.eq("transaction_type", filter.TransactionType)
	if filter.StartDate != nil {
		b.gte("transaction_date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		b.lte("transaction_date", *filter.EndDate)
	}

	b.args = append(b.args, filter.Limit)
	query := `
		SELECT id, material_id, plant_id, transaction_type, quantity, unit_of_measure,
		       COALESCE(reference_document, ''), COALESCE(reference_number, ''),
		       erp_system, COALESCE(erp_transaction_id, ''),
		       COALESCE(reason_code, ''), COALESCE(notes, ''),
		       transaction_date, created_at
		FROM inventory_transactions` + b.where() +
		fmt.Sprintf(` ORDER BY transaction_date DESC LIMIT $%d`, len(b.args))

	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.MaterialID, &t.PlantID, &t.TransactionType, &t.Quantity,
			&t.UnitOfMeasure, &t.ReferenceDocument, &t.ReferenceNumber,
			&t.ERPSystem, &t.ERPTransactionID, &t.ReasonCode, &t.Notes,
			&t.TransactionDate, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListAlerts devuelve alertas por fecha de creación descendente.
func (r *InventoryRepo) ListAlerts(ctx context.Context, filter repository.AlertFilter) ([]entity.InventoryAlert, error) {
	var b clauseBuilder
	b.eq("plant_id", filter.PlantID)
	b.eq("material_id", filter.MaterialID)
	b.eq("alert_type", filter.AlertType)
	b.eq("severity", filter.Severity)
	b.boolEq("is_active", filter.IsActive)

	query := `
		SELECT id, material_id, plant_id, alert_type, severity, message,
		       is_active, COALESCE(acknowledged_by, ''), acknowledged_at,
		       created_at, resolved_at
		FROM inventory_alerts` + b.where() + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory alerts: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryAlert
	for rows.Next() {
		var a entity.InventoryAlert
		if err := rows.Scan(
			&a.ID, &a.MaterialID, &a.PlantID, &a.AlertType, &a.Severity, &a.Message,
			&a.IsActive, &a.AcknowledgedBy, &a.AcknowledgedAt,
			&a.CreatedAt, &a.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
