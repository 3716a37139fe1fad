package entity

import "time"

// Tipos de transacción de inventario.
const (
	TransactionTypeGoodsReceipt = "goods_receipt"
	TransactionTypeGoodsIssue   = "goods_issue"
	TransactionTypeTransfer     = "transfer"
	TransactionTypeAdjustment   = "adjustment"
)

// InventoryTransaction es el registro inmutable de un movimiento de cantidad
// para un material/planta. Append-only: nunca se modifica tras su creación.
type InventoryTransaction struct {
	ID         int64
	MaterialID string
	PlantID    string

	TransactionType string
	Quantity        float64
	UnitOfMeasure   string

	ReferenceDocument string // opcional
	ReferenceNumber   string // opcional

	ERPSystem        string
	ERPTransactionID string // opcional

	ReasonCode string // opcional
	Notes      string // opcional

	TransactionDate time.Time
	CreatedAt       time.Time
}
