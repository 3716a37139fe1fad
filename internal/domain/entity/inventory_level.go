package entity

import "time"

// Tipos de stock SAP-style (value object conceptual).
const (
	StockTypeUnrestricted      = "unrestricted"       // libre utilización
	StockTypeQualityInspection = "quality_inspection" // en inspección de calidad
	StockTypeBlocked           = "blocked"            // bloqueado
)

// StockTypes lista los tipos de stock conocidos, en el orden de reporte.
var StockTypes = []string{
	StockTypeUnrestricted,
	StockTypeQualityInspection,
	StockTypeBlocked,
}

// InventoryLevel representa el stock actual de un material en una planta,
// sincronizado desde el ERP de origen. Read-only desde este servicio:
// la creación/actualización la hace el pipeline de sincronización externo.
//
// Conceptualmente TotalQuantity >= AvailableQuantity >= 0, pero el modelo no
// lo impone: los datos llegan tal cual del ERP.
type InventoryLevel struct {
	ID              int64
	MaterialID      string
	PlantID         string
	StorageLocation string // opcional
	StockType       string
	BatchNumber     string // opcional

	AvailableQuantity float64
	ReservedQuantity  float64
	TotalQuantity     float64
	UnitOfMeasure     string

	ERPSystem       string
	ERPMaterialCode string // opcional
	ERPPlantCode    string // opcional

	QualityStatus   string     // opcional
	ShelfLifeExpiry *time.Time // opcional

	LastUpdated time.Time
	CreatedAt   time.Time
}
