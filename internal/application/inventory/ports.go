package inventory

import (
	"context"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
)

// KPICache puerto de cache para snapshots de KPIs y resúmenes por planta.
// plantID vacío = snapshot global. Los fallos del cache nunca deben abortar
// la request: el caller degrada a la consulta directa.
type KPICache interface {
	GetKPIs(ctx context.Context, plantID string) (*dto.InventoryKPIs, bool, error)
	SetKPIs(ctx context.Context, plantID string, kpis *dto.InventoryKPIs) error
	GetSummary(ctx context.Context, plantID string) (*dto.InventorySummary, bool, error)
	SetSummary(ctx context.Context, plantID string, summary *dto.InventorySummary) error
}

// SummaryPDFGenerator puerto para la representación PDF del resumen ejecutivo.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, plantID string, kpis dto.InventoryKPIs, summary dto.InventorySummary) ([]byte, error)
}
