package entity

import "time"

// Tipos y severidades de alerta de inventario.
const (
	AlertTypeLowStock  = "low_stock"
	AlertTypeStockOut  = "stock_out"
	AlertTypeOverstock = "overstock"
	AlertTypeExpiry    = "expiry"

	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// InventoryAlert es una condición marcada sobre un material/planta.
// Ciclo de vida: se crea activa, opcionalmente se reconoce (actor + timestamp)
// y opcionalmente se resuelve (ResolvedAt). Una vez resuelta queda fuera de
// las consultas de alertas activas.
type InventoryAlert struct {
	ID         int64
	MaterialID string
	PlantID    string

	AlertType string
	Severity  string
	Message   string

	IsActive       bool
	AcknowledgedBy string     // opcional
	AcknowledgedAt *time.Time // opcional

	CreatedAt  time.Time
	ResolvedAt *time.Time // opcional
}
