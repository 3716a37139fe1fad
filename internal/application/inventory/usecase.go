package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
	"github.com/tu-usuario/inventory-health/pkg/logger"
)

// defaultTransactionLimit tope por defecto del historial de transacciones.
const defaultTransactionLimit = 100

// UseCase casos de uso read-only sobre el inventario sincronizado:
// listados filtrados, KPIs y resumen por tipo de stock.
//
// Los KPIs y el resumen pasan por el cache (cache-aside); el resto de
// consultas va siempre a la base de datos.
type UseCase struct {
	repo  repository.InventoryRepository
	cache KPICache
	pdf   SummaryPDFGenerator
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository, cache KPICache, pdf SummaryPDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, pdf: pdf, log: log}
}

// ListLevels devuelve los niveles de inventario que satisfacen el filtro.
// Filtro sin match devuelve lista vacía (no 404).
func (uc *UseCase) ListLevels(ctx context.Context, filter repository.LevelFilter) ([]dto.InventoryLevelResponse, error) {
	levels, err := uc.repo.ListLevels(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar niveles de inventario: %w", err)
	}
	out := make([]dto.InventoryLevelResponse, 0, len(levels))
	for i := range levels {
		out = append(out, toLevelResponse(&levels[i]))
	}
	return out, nil
}

// ListTransactions devuelve el historial de transacciones, más recientes
// primero. Limit <= 0 aplica el default de 100.
func (uc *UseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]dto.InventoryTransactionResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultTransactionLimit
	}
	txs, err := uc.repo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar transacciones: %w", err)
	}
	out := make([]dto.InventoryTransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out, nil
}

// ListAlerts devuelve alertas, más recientes primero. El default activo-solo
// lo aplica el boundary (filter.IsActive).
func (uc *UseCase) ListAlerts(ctx context.Context, filter repository.AlertFilter) ([]dto.InventoryAlertResponse, error) {
	alerts, err := uc.repo.ListAlerts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar alertas: %w", err)
	}
	out := make([]dto.InventoryAlertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertResponse(&alerts[i]))
	}
	return out, nil
}

// GetKPIs calcula el snapshot de KPIs para la planta indicada (vacío = todas).
// Cache-aside: un hit devuelve el snapshot cacheado con su last_updated
// original; un fallo de cache se loguea y se degrada a la consulta directa.
func (uc *UseCase) GetKPIs(ctx context.Context, plantID string) (*dto.InventoryKPIs, error) {
	if cached, ok, err := uc.cache.GetKPIs(ctx, plantID); err != nil {
		uc.log.Warn().Err(err).Str("plant_id", plantID).Msg("cache de KPIs no disponible")
	} else if ok {
		return cached, nil
	}

	levels, err := uc.repo.ListLevels(ctx, repository.LevelFilter{PlantID: plantID})
	if err != nil {
		uc.log.Error().Err(err).Str("plant_id", plantID).Msg("error calculando KPIs de inventario")
		return nil, fmt.Errorf("kpis de inventario: %w", err)
	}

	k := ComputeKPIs(levels)
	kpis := &dto.InventoryKPIs{
		TotalMaterials: k.TotalMaterials,
		TotalValue:     k.TotalValue,
		LowStockCount:  k.LowStockCount,
		OverstockCount: k.OverstockCount,
		StockOutRisk:   k.StockOutRisk,
		LastUpdated:    time.Now(),
	}

	if err := uc.cache.SetKPIs(ctx, plantID, kpis); err != nil {
		uc.log.Warn().Err(err).Str("plant_id", plantID).Msg("no se pudo cachear el snapshot de KPIs")
	}
	return kpis, nil
}

// GetSummary calcula el resumen agrupado por tipo de stock.
func (uc *UseCase) GetSummary(ctx context.Context, plantID string) (*dto.InventorySummary, error) {
	if cached, ok, err := uc.cache.GetSummary(ctx, plantID); err != nil {
		uc.log.Warn().Err(err).Str("plant_id", plantID).Msg("cache de resumen no disponible")
	} else if ok {
		return cached, nil
	}

	levels, err := uc.repo.ListLevels(ctx, repository.LevelFilter{PlantID: plantID})
	if err != nil {
		uc.log.Error().Err(err).Str("plant_id", plantID).Msg("error calculando resumen de inventario")
		return nil, fmt.Errorf("resumen de inventario: %w", err)
	}

	byType := SummarizeByType(levels)
	summaryByType := make(map[string]dto.StockTypeSummary, len(byType))
	for stockType, s := range byType {
		summaryByType[stockType] = dto.StockTypeSummary{
			Count:         s.Count,
			TotalQuantity: s.TotalQuantity,
			TotalValue:    s.TotalValue,
		}
	}
	summary := &dto.InventorySummary{
		SummaryByType:  summaryByType,
		TotalMaterials: len(levels),
		LastUpdated:    time.Now(),
	}

	if err := uc.cache.SetSummary(ctx, plantID, summary); err != nil {
		uc.log.Warn().Err(err).Str("plant_id", plantID).Msg("no se pudo cachear el resumen")
	}
	return summary, nil
}

// GetSummaryReport genera el informe PDF del resumen ejecutivo.
func (uc *UseCase) GetSummaryReport(ctx context.Context, plantID string) ([]byte, error) {
	kpis, err := uc.GetKPIs(ctx, plantID)
	if err != nil {
		return nil, err
	}
	summary, err := uc.GetSummary(ctx, plantID)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.pdf.GenerateSummaryPDF(ctx, plantID, *kpis, *summary)
	if err != nil {
		uc.log.Error().Err(err).Str("plant_id", plantID).Msg("error generando informe PDF")
		return nil, fmt.Errorf("informe PDF de inventario: %w", err)
	}
	return pdfBytes, nil
}

// ── Mapeo entidad → DTO ───────────────────────────────────────────────────────

func toLevelResponse(l *entity.InventoryLevel) dto.InventoryLevelResponse {
	return dto.InventoryLevelResponse{
		ID:                l.ID,
		MaterialID:        l.MaterialID,
		PlantID:           l.PlantID,
		StorageLocation:   l.StorageLocation,
		StockType:         l.StockType,
		BatchNumber:       l.BatchNumber,
		AvailableQuantity: l.AvailableQuantity,
		ReservedQuantity:  l.ReservedQuantity,
		TotalQuantity:     l.TotalQuantity,
		UnitOfMeasure:     l.UnitOfMeasure,
		ERPSystem:         l.ERPSystem,
		ERPMaterialCode:   l.ERPMaterialCode,
		ERPPlantCode:      l.ERPPlantCode,
		QualityStatus:     l.QualityStatus,
		ShelfLifeExpiry:   l.ShelfLifeExpiry,
		LastUpdated:       l.LastUpdated,
		CreatedAt:         l.CreatedAt,
	}
}

func toTransactionResponse(t *entity.InventoryTransaction) dto.InventoryTransactionResponse {
	return dto.InventoryTransactionResponse{
		ID:                t.ID,
		MaterialID:        t.MaterialID,
		PlantID:           t.PlantID,
		TransactionType:   t.TransactionType,
		Quantity:          t.Quantity,
		UnitOfMeasure:     t.UnitOfMeasure,
		ReferenceDocument: t.ReferenceDocument,
		ReferenceNumber:   t.ReferenceNumber,
		ERPSystem:         t.ERPSystem,
		ERPTransactionID:  t.ERPTransactionID,
		ReasonCode:        t.ReasonCode,
		Notes:             t.Notes,
		TransactionDate:   t.TransactionDate,
		CreatedAt:         t.CreatedAt,
	}
}

func toAlertResponse(a *entity.InventoryAlert) dto.InventoryAlertResponse {
	return dto.InventoryAlertResponse{
		ID:             a.ID,
		MaterialID:     a.MaterialID,
		PlantID:        a.PlantID,
		AlertType:      a.AlertType,
		Severity:       a.Severity,
		Message:        a.Message,
		IsActive:       a.IsActive,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
		CreatedAt:      a.CreatedAt,
		ResolvedAt:     a.ResolvedAt,
	}
}
