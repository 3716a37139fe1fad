package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// LevelFilter filtro conjuntivo para niveles de inventario.
// Campo vacío = sin restricción sobre ese atributo.
type LevelFilter struct {
	PlantID    string
	MaterialID string
	StockType  string
	ERPSystem  string
}

// TransactionFilter filtro conjuntivo para el historial de transacciones.
// Limit <= 0 aplica el default del repositorio (100).
type TransactionFilter struct {
	PlantID         string
	MaterialID      string
	TransactionType string
	StartDate       *time.Time
	EndDate         *time.Time
	Limit           int
}

// AlertFilter filtro conjuntivo para alertas.
// IsActive nil = sin restricción; el boundary aplica true por defecto.
type AlertFilter struct {
	PlantID    string
	MaterialID string
	AlertType  string
	Severity   string
	IsActive   *bool
}

// InventoryRepository define el puerto de persistencia read-only sobre los
// datos de inventario sincronizados por el ERP (DIP).
type InventoryRepository interface {
	// ListLevels devuelve los niveles que satisfacen el filtro, sin orden garantizado.
	ListLevels(ctx context.Context, filter LevelFilter) ([]entity.InventoryLevel, error)
	// ListTransactions devuelve transacciones ordenadas por transaction_date DESC,
	// acotadas por filter.Limit.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]entity.InventoryTransaction, error)
	// ListAlerts devuelve alertas ordenadas por created_at DESC.
	ListAlerts(ctx context.Context, filter AlertFilter) ([]entity.InventoryAlert, error)
}
