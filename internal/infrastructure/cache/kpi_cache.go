// Package cache implementa el cache Redis de snapshots del dashboard
// (KPIs y resumen por tipo de stock), con una variante noop cuando el
// cache está deshabilitado por configuración.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/inventory-health/internal/application/dto"
	appinventory "github.com/tu-usuario/inventory-health/internal/application/inventory"
	"github.com/tu-usuario/inventory-health/pkg/config"
)

const (
	kpiKeyPrefix     = "inventory:kpis"
	summaryKeyPrefix = "inventory:summary"
	defaultTTL       = 5 * time.Minute
)

var _ appinventory.KPICache = (*RedisKPICache)(nil)
var _ appinventory.KPICache = (*NoopKPICache)(nil)

// RedisKPICache cache-aside de snapshots sobre Redis con TTL.
type RedisKPICache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKPICache construye el cache según configuración: Redis si está
// habilitado (verificando conectividad con un ping), noop en caso contrario.
func NewKPICache(cfg config.CacheConfig) (appinventory.KPICache, error) {
	if !cfg.Enabled {
		return &NoopKPICache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisKPICache{client: client, ttl: ttl}, nil
}

// GetKPIs devuelve el snapshot cacheado para la planta (ok=false en miss).
func (c *RedisKPICache) GetKPIs(ctx context.Context, plantID string) (*dto.InventoryKPIs, bool, error) {
	var kpis dto.InventoryKPIs
	ok, err := c.get(ctx, buildKey(kpiKeyPrefix, plantID), &kpis)
	if !ok || err != nil {
		return nil, false, err
	}
	return &kpis, true, nil
}

// SetKPIs cachea el snapshot con el TTL configurado.
func (c *RedisKPICache) SetKPIs(ctx context.Context, plantID string, kpis *dto.InventoryKPIs) error {
	return c.set(ctx, buildKey(kpiKeyPrefix, plantID), kpis)
}

// GetSummary devuelve el resumen cacheado para la planta (ok=false en miss).
func (c *RedisKPICache) GetSummary(ctx context.Context, plantID string) (*dto.InventorySummary, bool, error) {
	var summary dto.InventorySummary
	ok, err := c.get(ctx, buildKey(summaryKeyPrefix, plantID), &summary)
	if !ok || err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

// SetSummary cachea el resumen con el TTL configurado.
func (c *RedisKPICache) SetSummary(ctx context.Context, plantID string, summary *dto.InventorySummary) error {
	return c.set(ctx, buildKey(summaryKeyPrefix, plantID), summary)
}

func (c *RedisKPICache) get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode snapshot cacheado: %w", err)
	}
	return true, nil
}

func (c *RedisKPICache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func buildKey(prefix, plantID string) string {
	if plantID == "" {
		return prefix + ":all"
	}
	return prefix + ":" + plantID
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis url inválida: %w", err)
		}
		return opt, nil
	}
	return &redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

// NoopKPICache implementación que nunca acierta: todo se calcula por request.
type NoopKPICache struct{}

func (NoopKPICache) GetKPIs(context.Context, string) (*dto.InventoryKPIs, bool, error) {
	return nil, false, nil
}

func (NoopKPICache) SetKPIs(context.Context, string, *dto.InventoryKPIs) error { return nil }

func (NoopKPICache) GetSummary(context.Context, string) (*dto.InventorySummary, bool, error) {
	return nil, false, nil
}

func (NoopKPICache) SetSummary(context.Context, string, *dto.InventorySummary) error { return nil }
