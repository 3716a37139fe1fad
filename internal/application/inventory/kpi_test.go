package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

func level(stockType string, available, total float64) entity.InventoryLevel {
	return entity.InventoryLevel{
		MaterialID:        "MAT-001",
		PlantID:           "PLANT001",
		StockType:         stockType,
		AvailableQuantity: available,
		TotalQuantity:     total,
		UnitOfMeasure:     "EA",
		ERPSystem:         "SAP",
	}
}

func TestComputeKPIs_ConjuntoVacio(t *testing.T) {
	k := inventory.ComputeKPIs(nil)

	assert.Zero(t, k.TotalMaterials)
	assert.Zero(t, k.TotalValue)
	assert.Zero(t, k.LowStockCount)
	assert.Zero(t, k.OverstockCount)
	assert.Zero(t, k.StockOutRisk)
}

// Vector de referencia: tres registros con available [0, 5, 20] y
// total [0, 5, 1200].
func TestComputeKPIs_VectorReferencia(t *testing.T) {
	levels := []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 0, 0),
		level(entity.StockTypeUnrestricted, 5, 5),
		level(entity.StockTypeBlocked, 20, 1200),
	}

	k := inventory.ComputeKPIs(levels)

	assert.Equal(t, 3, k.TotalMaterials, "un material por registro")
	assert.InDelta(t, 1205.0, k.TotalValue, 1e-9, "total_value = suma de total_quantity")
	assert.Equal(t, 2, k.LowStockCount, "available < 10 cuenta como stock bajo")
	assert.Equal(t, 1, k.OverstockCount, "total > 1000 cuenta como sobrestock")
	assert.Equal(t, 1, k.StockOutRisk, "available == 0 cuenta como riesgo de quiebre")
}

// Los umbrales son estrictos: exactamente 10 disponible no es stock bajo y
// exactamente 1000 total no es sobrestock.
func TestComputeKPIs_UmbralesEstrictos(t *testing.T) {
	levels := []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 10, 1000),
	}

	k := inventory.ComputeKPIs(levels)

	assert.Zero(t, k.LowStockCount)
	assert.Zero(t, k.OverstockCount)
	assert.Zero(t, k.StockOutRisk)
}

// Agregar un registro nunca decrementa ningún contador.
func TestComputeKPIs_MonotoniaAlAgregar(t *testing.T) {
	base := []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 0, 2000),
		level(entity.StockTypeQualityInspection, 50, 80),
	}
	before := inventory.ComputeKPIs(base)
	after := inventory.ComputeKPIs(append(base, level(entity.StockTypeBlocked, 3, 3)))

	assert.GreaterOrEqual(t, after.TotalMaterials, before.TotalMaterials)
	assert.GreaterOrEqual(t, after.TotalValue, before.TotalValue)
	assert.GreaterOrEqual(t, after.LowStockCount, before.LowStockCount)
	assert.GreaterOrEqual(t, after.OverstockCount, before.OverstockCount)
	assert.GreaterOrEqual(t, after.StockOutRisk, before.StockOutRisk)
}

func TestSummarizeByType_AgrupaPorTipoDeStock(t *testing.T) {
	levels := []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 10, 100),
		level(entity.StockTypeUnrestricted, 20, 200),
		level(entity.StockTypeBlocked, 0, 50),
	}

	summary := inventory.SummarizeByType(levels)

	assert.Len(t, summary, 2)
	assert.Equal(t, 2, summary[entity.StockTypeUnrestricted].Count)
	assert.InDelta(t, 300.0, summary[entity.StockTypeUnrestricted].TotalQuantity, 1e-9)
	assert.InDelta(t, 300.0, summary[entity.StockTypeUnrestricted].TotalValue, 1e-9)
	assert.Equal(t, 1, summary[entity.StockTypeBlocked].Count)
	assert.InDelta(t, 50.0, summary[entity.StockTypeBlocked].TotalQuantity, 1e-9)
}

// La suma de los conteos por tipo debe igualar el total de registros, y la
// suma de cantidades por tipo debe igualar el total_value global.
func TestSummarizeByType_ConsistenteConKPIs(t *testing.T) {
	levels := []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 1, 10),
		level(entity.StockTypeQualityInspection, 2, 20),
		level(entity.StockTypeBlocked, 3, 30),
		level(entity.StockTypeUnrestricted, 4, 40),
	}

	k := inventory.ComputeKPIs(levels)
	summary := inventory.SummarizeByType(levels)

	var count int
	var quantity float64
	for _, s := range summary {
		count += s.Count
		quantity += s.TotalQuantity
	}
	assert.Equal(t, k.TotalMaterials, count)
	assert.InDelta(t, k.TotalValue, quantity, 1e-9)
}
