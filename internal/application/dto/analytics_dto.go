package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExecutiveKPIs KPIs de nivel ejecutivo (valores ilustrativos fijos).
type ExecutiveKPIs struct {
	InventoryTurnover float64         `json:"inventory_turnover"`
	DaysOfInventory   int             `json:"days_of_inventory"`
	StockOutRate      float64         `json:"stock_out_rate"`
	OverstockRate     float64         `json:"overstock_rate"`
	InventoryAccuracy float64         `json:"inventory_accuracy"`
	CostOfInventory   decimal.Decimal `json:"cost_of_inventory"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// TrendValuePoint punto de una serie de valor total.
type TrendValuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TrendCountPoint punto de una serie de conteos.
type TrendCountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// InventoryTrends series de tendencia de inventario (ilustrativas).
type InventoryTrends struct {
	TotalInventory []TrendValuePoint `json:"total_inventory"`
	StockOuts      []TrendCountPoint `json:"stock_outs"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// PlantComparisonEntry métricas comparativas de una planta.
type PlantComparisonEntry struct {
	PlantID        string          `json:"plant_id"`
	PlantName      string          `json:"plant_name"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	TurnoverRate   float64         `json:"turnover_rate"`
	StockOutRate   float64         `json:"stock_out_rate"`
}

// PlantComparison comparación entre plantas (ilustrativa).
type PlantComparison struct {
	Plants      []PlantComparisonEntry `json:"plants"`
	LastUpdated time.Time              `json:"last_updated"`
}
