// Package pdf implementa la representación PDF del resumen ejecutivo de
// inventario (KPIs + desglose por tipo de stock) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + planta  │  Fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: materiales / valor / stock bajo / sobrestock / riesgo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo de stock | Registros | Cantidad | Valor        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"slices"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
	appinventory "github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.SummaryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.SummaryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSummaryPDF genera el informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSummaryPDF(
	_ context.Context,
	plantID string,
	kpis dto.InventoryKPIs,
	summary dto.InventorySummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen Ejecutivo de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plantID, kpis))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(kpis)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(plantID string, kpis dto.InventoryKPIs) core.Row {
	scope := "Todas las plantas"
	if plantID != "" {
		scope = "Planta " + plantID
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Resumen Ejecutivo de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+kpis.LastUpdated.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func kpiRows(kpis dto.InventoryKPIs) []core.Row {
	entries := []struct {
		label string
		value string
	}{
		{"Materiales totales", fmt.Sprintf("%d", kpis.TotalMaterials)},
		{"Valor total (cantidad)", fmt.Sprintf("%.2f", kpis.TotalValue)},
		{"Stock bajo", fmt.Sprintf("%d", kpis.LowStockCount)},
		{"Sobrestock", fmt.Sprintf("%d", kpis.OverstockCount)},
		{"Riesgo de quiebre", fmt.Sprintf("%d", kpis.StockOutRisk)},
	}
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(e.label, props.Text{Size: 9})),
			col.New(6).Add(text.New(e.value, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		col.New(4).Add(text.New("Tipo de stock", header)),
		col.New(2).Add(text.New("Registros", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(3).Add(text.New("Valor", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func tableRows(summary dto.InventorySummary) []core.Row {
	types := orderedStockTypes(summary.SummaryByType)

	rows := make([]core.Row, 0, len(types))
	for _, t := range types {
		s := summary.SummaryByType[t]
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(t, props.Text{Size: 9})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Count), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New(fmt.Sprintf("%.2f", s.TotalQuantity), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New(fmt.Sprintf("%.2f", s.TotalValue), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

// orderedStockTypes devuelve los tipos presentes en el resumen: primero los
// conocidos en su orden de reporte, luego cualquier tipo desconocido en orden
// alfabético para que el informe sea reproducible.
func orderedStockTypes(byType map[string]dto.StockTypeSummary) []string {
	types := make([]string, 0, len(byType))
	for _, t := range entity.StockTypes {
		if _, ok := byType[t]; ok {
			types = append(types, t)
		}
	}
	known := len(types)
	for t := range byType {
		if !slices.Contains(entity.StockTypes, t) {
			types = append(types, t)
		}
	}
	sort.Strings(types[known:])
	return types
}
