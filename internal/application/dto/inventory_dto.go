package dto

import "time"

// InventoryLevelResponse proyección de un nivel de inventario.
type InventoryLevelResponse struct {
	ID              int64  `json:"id"`
	MaterialID      string `json:"material_id"`
	PlantID         string `json:"plant_id"`
	StorageLocation string `json:"storage_location,omitempty"`
	StockType       string `json:"stock_type"`
	BatchNumber     string `json:"batch_number,omitempty"`

	AvailableQuantity float64 `json:"available_quantity"`
	ReservedQuantity  float64 `json:"reserved_quantity"`
	TotalQuantity     float64 `json:"total_quantity"`
	UnitOfMeasure     string  `json:"unit_of_measure"`

	ERPSystem       string `json:"erp_system"`
	ERPMaterialCode string `json:"erp_material_code,omitempty"`
	ERPPlantCode    string `json:"erp_plant_code,omitempty"`

	QualityStatus   string     `json:"quality_status,omitempty"`
	ShelfLifeExpiry *time.Time `json:"shelf_life_expiry,omitempty"`

	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

// InventoryTransactionResponse proyección de una transacción de inventario.
type InventoryTransactionResponse struct {
	ID         int64  `json:"id"`
	MaterialID string `json:"material_id"`
	PlantID    string `json:"plant_id"`

	TransactionType string  `json:"transaction_type"`
	Quantity        float64 `json:"quantity"`
	UnitOfMeasure   string  `json:"unit_of_measure"`

	ReferenceDocument string `json:"reference_document,omitempty"`
	ReferenceNumber   string `json:"reference_number,omitempty"`

	ERPSystem        string `json:"erp_system"`
	ERPTransactionID string `json:"erp_transaction_id,omitempty"`

	ReasonCode string `json:"reason_code,omitempty"`
	Notes      string `json:"notes,omitempty"`

	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// InventoryAlertResponse proyección de una alerta de inventario.
type InventoryAlertResponse struct {
	ID         int64  `json:"id"`
	MaterialID string `json:"material_id"`
	PlantID    string `json:"plant_id"`

	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`

	IsActive       bool       `json:"is_active"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// InventoryKPIs snapshot de KPIs para el dashboard ejecutivo.
// Derivado, no persistido: se calcula fresco en cada request sobre el
// conjunto actual de niveles de inventario.
type InventoryKPIs struct {
	TotalMaterials int       `json:"total_materials"`
	TotalValue     float64   `json:"total_value"`
	LowStockCount  int       `json:"low_stock_count"`
	OverstockCount int       `json:"overstock_count"`
	StockOutRisk   int       `json:"stock_out_risk"`
	LastUpdated    time.Time `json:"last_updated"`
}

// StockTypeSummary acumulado de un tipo de stock dentro del resumen.
type StockTypeSummary struct {
	Count         int     `json:"count"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

// InventorySummary resumen agrupado por tipo de stock.
type InventorySummary struct {
	SummaryByType  map[string]StockTypeSummary `json:"summary_by_type"`
	TotalMaterials int                         `json:"total_materials"`
	LastUpdated    time.Time                   `json:"last_updated"`
}
