package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de material del maestro ERP.
const (
	MaterialCategoryRawMaterial  = "raw_material"
	MaterialCategorySemiFinished = "semi_finished"
	MaterialCategoryFinishedGood = "finished_good"
	MaterialCategorySparePart    = "spare_part"
	MaterialCategoryPackaging    = "packaging"
)

// MaterialCategories lista las categorías conocidas, en el orden de reporte.
var MaterialCategories = []string{
	MaterialCategoryRawMaterial,
	MaterialCategorySemiFinished,
	MaterialCategoryFinishedGood,
	MaterialCategorySparePart,
	MaterialCategoryPackaging,
}

// Material es el maestro de materiales sincronizado desde el ERP.
// StandardPrice es el precio estándar del ERP (NUMERIC en DB -> decimal).
type Material struct {
	ID            int64
	MaterialID    string // código de material (único por ERP)
	Description   string
	Category      string
	MaterialGroup string
	BaseUnit      string
	StandardPrice decimal.Decimal

	ERPSystem       string
	ERPMaterialCode string // opcional

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
