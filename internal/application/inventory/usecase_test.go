package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-health/internal/application/dto"
	"github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/internal/domain/entity"
	"github.com/tu-usuario/inventory-health/internal/domain/repository"
	"github.com/tu-usuario/inventory-health/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	levels []entity.InventoryLevel
	txs    []entity.InventoryTransaction
	alerts []entity.InventoryAlert
	err    error

	lastLevelFilter repository.LevelFilter
	lastTxFilter    repository.TransactionFilter
	lastAlertFilter repository.AlertFilter
}

func (r *fakeInventoryRepo) ListLevels(_ context.Context, f repository.LevelFilter) ([]entity.InventoryLevel, error) {
	r.lastLevelFilter = f
	return r.levels, r.err
}

func (r *fakeInventoryRepo) ListTransactions(_ context.Context, f repository.TransactionFilter) ([]entity.InventoryTransaction, error) {
	r.lastTxFilter = f
	return r.txs, r.err
}

func (r *fakeInventoryRepo) ListAlerts(_ context.Context, f repository.AlertFilter) ([]entity.InventoryAlert, error) {
	r.lastAlertFilter = f
	return r.alerts, r.err
}

type fakeKPICache struct {
	kpis      map[string]*dto.InventoryKPIs
	summaries map[string]*dto.InventorySummary
	getErr    error
	setErr    error
	setCalls  int
}

func newFakeKPICache() *fakeKPICache {
	return &fakeKPICache{
		kpis:      make(map[string]*dto.InventoryKPIs),
		summaries: make(map[string]*dto.InventorySummary),
	}
}

func (c *fakeKPICache) GetKPIs(_ context.Context, plantID string) (*dto.InventoryKPIs, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.kpis[plantID]
	return v, ok, nil
}

func (c *fakeKPICache) SetKPIs(_ context.Context, plantID string, kpis *dto.InventoryKPIs) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setCalls++
	c.kpis[plantID] = kpis
	return nil
}

func (c *fakeKPICache) GetSummary(_ context.Context, plantID string) (*dto.InventorySummary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.summaries[plantID]
	return v, ok, nil
}

func (c *fakeKPICache) SetSummary(_ context.Context, plantID string, s *dto.InventorySummary) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.setCalls++
	c.summaries[plantID] = s
	return nil
}

type fakePDFGenerator struct {
	bytes []byte
	err   error
}

func (g *fakePDFGenerator) GenerateSummaryPDF(_ context.Context, _ string, _ dto.InventoryKPIs, _ dto.InventorySummary) ([]byte, error) {
	return g.bytes, g.err
}

func newUseCase(repo *fakeInventoryRepo, cache inventory.KPICache) *inventory.UseCase {
	return inventory.NewUseCase(repo, cache, &fakePDFGenerator{bytes: []byte("%PDF-")}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListTransactions_AplicaLimitDefault(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := newUseCase(repo, newFakeKPICache())

	_, err := uc.ListTransactions(context.Background(), repository.TransactionFilter{PlantID: "PLANT001"})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.lastTxFilter.Limit, "limit <= 0 debe degradar al default de 100")
	assert.Equal(t, "PLANT001", repo.lastTxFilter.PlantID)
}

func TestListTransactions_RespetaLimitExplicito(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := newUseCase(repo, newFakeKPICache())

	_, err := uc.ListTransactions(context.Background(), repository.TransactionFilter{Limit: 7})
	require.NoError(t, err)

	assert.Equal(t, 7, repo.lastTxFilter.Limit)
}

func TestListLevels_FiltroSinMatchDevuelveListaVacia(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := newUseCase(repo, newFakeKPICache())

	out, err := uc.ListLevels(context.Background(), repository.LevelFilter{PlantID: "NO-EXISTE"})
	require.NoError(t, err)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListAlerts_PropagaFiltro(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := newUseCase(repo, newFakeKPICache())

	active := true
	_, err := uc.ListAlerts(context.Background(), repository.AlertFilter{
		Severity: entity.SeverityCritical,
		IsActive: &active,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SeverityCritical, repo.lastAlertFilter.Severity)
	require.NotNil(t, repo.lastAlertFilter.IsActive)
	assert.True(t, *repo.lastAlertFilter.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// KPIs y resumen con cache-aside
// ──────────────────────────────────────────────────────────────────────────────

func TestGetKPIs_MissCalculaYCachea(t *testing.T) {
	repo := &fakeInventoryRepo{levels: []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 0, 0),
		level(entity.StockTypeUnrestricted, 5, 5),
		level(entity.StockTypeBlocked, 20, 1200),
	}}
	cache := newFakeKPICache()
	uc := newUseCase(repo, cache)

	kpis, err := uc.GetKPIs(context.Background(), "PLANT001")
	require.NoError(t, err)

	assert.Equal(t, 3, kpis.TotalMaterials)
	assert.InDelta(t, 1205.0, kpis.TotalValue, 1e-9)
	assert.Equal(t, 2, kpis.LowStockCount)
	assert.Equal(t, 1, kpis.OverstockCount)
	assert.Equal(t, 1, kpis.StockOutRisk)
	assert.False(t, kpis.LastUpdated.IsZero())
	assert.Equal(t, 1, cache.setCalls, "un miss debe poblar el cache")
}

func TestGetKPIs_HitDevuelveSnapshotCacheado(t *testing.T) {
	repo := &fakeInventoryRepo{err: errors.New("no debe consultarse la base")}
	cache := newFakeKPICache()
	cached := &dto.InventoryKPIs{TotalMaterials: 42, LastUpdated: time.Now().Add(-time.Minute)}
	cache.kpis[""] = cached
	uc := newUseCase(repo, cache)

	kpis, err := uc.GetKPIs(context.Background(), "")
	require.NoError(t, err)

	assert.Same(t, cached, kpis, "un hit no debe recalcular ni tocar la base")
}

func TestGetKPIs_CacheCaidoDegradaAConsultaDirecta(t *testing.T) {
	repo := &fakeInventoryRepo{levels: []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 50, 50),
	}}
	cache := newFakeKPICache()
	cache.getErr = errors.New("redis: connection refused")
	uc := newUseCase(repo, cache)

	kpis, err := uc.GetKPIs(context.Background(), "PLANT001")
	require.NoError(t, err, "un fallo del cache nunca debe abortar la request")
	assert.Equal(t, 1, kpis.TotalMaterials)
}

func TestGetKPIs_ErrorDeRepoSePropaga(t *testing.T) {
	repo := &fakeInventoryRepo{err: errors.New("conexión perdida")}
	uc := newUseCase(repo, newFakeKPICache())

	_, err := uc.GetKPIs(context.Background(), "")
	assert.Error(t, err)
}

func TestGetSummary_AgrupaPorTipo(t *testing.T) {
	repo := &fakeInventoryRepo{levels: []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 10, 100),
		level(entity.StockTypeUnrestricted, 20, 200),
		level(entity.StockTypeBlocked, 0, 50),
	}}
	uc := newUseCase(repo, newFakeKPICache())

	summary, err := uc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalMaterials)
	assert.Len(t, summary.SummaryByType, 2)
	assert.Equal(t, 2, summary.SummaryByType[entity.StockTypeUnrestricted].Count)
	assert.InDelta(t, 300.0, summary.SummaryByType[entity.StockTypeUnrestricted].TotalQuantity, 1e-9)
}

func TestGetSummaryReport_ComponeKPIsYResumen(t *testing.T) {
	repo := &fakeInventoryRepo{levels: []entity.InventoryLevel{
		level(entity.StockTypeUnrestricted, 10, 100),
	}}
	uc := newUseCase(repo, newFakeKPICache())

	pdfBytes, err := uc.GetSummaryReport(context.Background(), "PLANT001")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), pdfBytes)
}

func TestGetSummaryReport_ErrorDelGeneradorSePropaga(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := inventory.NewUseCase(repo, newFakeKPICache(), &fakePDFGenerator{err: errors.New("sin fuente")}, logger.Nop())

	_, err := uc.GetSummaryReport(context.Background(), "")
	assert.Error(t, err)
}
