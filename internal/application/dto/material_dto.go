package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialResponse proyección de un material del maestro ERP.
type MaterialResponse struct {
	ID            int64           `json:"id"`
	MaterialID    string          `json:"material_id"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	MaterialGroup string          `json:"material_group"`
	BaseUnit      string          `json:"base_unit"`
	StandardPrice decimal.Decimal `json:"standard_price"`

	ERPSystem       string `json:"erp_system"`
	ERPMaterialCode string `json:"erp_material_code,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaterialCategoriesResponse lista de categorías conocidas.
type MaterialCategoriesResponse struct {
	Categories []string `json:"categories"`
}
