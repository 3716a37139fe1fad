// Package inventory contiene los casos de uso de consulta de inventario y el
// motor de KPIs del dashboard ejecutivo.
package inventory

import (
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// Umbrales fijos del negocio. No son configurables: el dashboard ejecutivo
// reporta contra estos cortes en todas las plantas.
const (
	lowStockThreshold  = 10.0   // available_quantity por debajo = stock bajo
	overstockThreshold = 1000.0 // total_quantity por encima = sobrestock
)

// KPISet métricas escalares derivadas de un conjunto de niveles de inventario.
// TotalValue es la suma de total_quantity: proxy de costo heredado del modelo
// de datos, no un importe monetario.
type KPISet struct {
	TotalMaterials int
	TotalValue     float64
	LowStockCount  int
	OverstockCount int
	StockOutRisk   int
}

// TypeSummary acumulado por tipo de stock.
type TypeSummary struct {
	Count         int
	TotalQuantity float64
	TotalValue    float64
}

// ComputeKPIs calcula los KPIs escalares en una sola pasada, sin efectos.
// Conjunto vacío degrada a KPIs en cero.
func ComputeKPIs(levels []entity.InventoryLevel) KPISet {
	var k KPISet
	k.TotalMaterials = len(levels)
	for i := range levels {
		l := &levels[i]
		k.TotalValue += l.TotalQuantity
		if l.AvailableQuantity < lowStockThreshold {
			k.LowStockCount++
		}
		if l.TotalQuantity > overstockThreshold {
			k.OverstockCount++
		}
		if l.AvailableQuantity == 0 {
			k.StockOutRisk++
		}
	}
	return k
}

// SummarizeByType agrupa los niveles por tipo de stock en una sola pasada.
// TotalValue por grupo usa el mismo proxy de cantidad que el KPI global.
func SummarizeByType(levels []entity.InventoryLevel) map[string]TypeSummary {
	summary := make(map[string]TypeSummary)
	for i := range levels {
		l := &levels[i]
		s := summary[l.StockType]
		s.Count++
		s.TotalQuantity += l.TotalQuantity
		s.TotalValue += l.TotalQuantity
		summary[l.StockType] = s
	}
	return summary
}
