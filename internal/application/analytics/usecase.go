// Package analytics expone los reportes ejecutivos de analítica.
//
// Los valores son ilustrativos fijos (igual que el resto de la capa "AI"):
// representan la forma del contrato hasta que exista el pipeline real.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
)

// KPIs ejecutivos ilustrativos.
const (
	inventoryTurnover = 4.2
	daysOfInventory   = 87
	stockOutRate      = 0.023
	overstockRate     = 0.156
	inventoryAccuracy = 0.987
)

var costOfInventory = decimal.NewFromFloat(1250000.00)

// UseCase reportes de analítica para el dashboard ejecutivo.
type UseCase struct {
	now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase() *UseCase {
	return &UseCase{now: time.Now}
}

// ExecutiveKPIs devuelve los KPIs de nivel ejecutivo.
func (uc *UseCase) ExecutiveKPIs(_ context.Context, plantID string) (*dto.ExecutiveKPIs, error) {
	_ = plantID // el payload ilustrativo no varía por planta
	return &dto.ExecutiveKPIs{
		InventoryTurnover: inventoryTurnover,
		DaysOfInventory:   daysOfInventory,
		StockOutRate:      stockOutRate,
		OverstockRate:     overstockRate,
		InventoryAccuracy: inventoryAccuracy,
		CostOfInventory:   costOfInventory,
		LastUpdated:       uc.now(),
	}, nil
}

// Trends series de tendencia de inventario.
func (uc *UseCase) Trends(_ context.Context, plantID string, days int) (*dto.InventoryTrends, error) {
	_, _ = plantID, days
	return &dto.InventoryTrends{
		TotalInventory: []dto.TrendValuePoint{
			{Date: "2024-01-01", Value: 1200000},
			{Date: "2024-01-15", Value: 1180000},
			{Date: "2024-02-01", Value: 1250000},
		},
		StockOuts: []dto.TrendCountPoint{
			{Date: "2024-01-01", Count: 5},
			{Date: "2024-01-15", Count: 3},
			{Date: "2024-02-01", Count: 7},
		},
		LastUpdated: uc.now(),
	}, nil
}

// PlantComparison comparación de métricas entre plantas.
func (uc *UseCase) PlantComparison(_ context.Context) (*dto.PlantComparison, error) {
	return &dto.PlantComparison{
		Plants: []dto.PlantComparisonEntry{
			{
				PlantID:        "PLANT001",
				PlantName:      "North Manufacturing",
				InventoryValue: decimal.NewFromInt(450000),
				TurnoverRate:   4.5,
				StockOutRate:   0.018,
			},
			{
				PlantID:        "PLANT002",
				PlantName:      "South Distribution",
				InventoryValue: decimal.NewFromInt(320000),
				TurnoverRate:   5.2,
				StockOutRate:   0.025,
			},
		},
		LastUpdated: uc.now(),
	}, nil
}
