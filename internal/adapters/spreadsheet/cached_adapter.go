package spreadsheet

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/providers"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/repositories"
)

const gridCacheKey = "pricelist:grid"

// CachedAdapter puts a short-lived cache in front of the sheet reads. Every
// quote recomputation re-reads the full grid, and the Sheets API is both slow
// and quota-limited, so even a 30 second TTL absorbs nearly all of the load.
type CachedAdapter struct {
	inner      repositories.PriceListRepository
	cache      providers.CacheProvider
	ttlSeconds int
	logger     zerolog.Logger
}

func NewCachedAdapter(inner repositories.PriceListRepository, cache providers.CacheProvider, ttlSeconds int, logger zerolog.Logger) *CachedAdapter {
	return &CachedAdapter{
		inner:      inner,
		cache:      cache,
		ttlSeconds: ttlSeconds,
		logger:     logger,
	}
}

var _ repositories.PriceListRepository = (*CachedAdapter)(nil)

func (a *CachedAdapter) GetGrid(ctx context.Context) ([][]string, error) {
	if cached, err := a.cache.Get(ctx, gridCacheKey); err == nil && cached != nil {
		var grid [][]string
		if err := json.Unmarshal(cached, &grid); err == nil {
			return grid, nil
		}
		a.logger.Warn().Msg("discarding malformed cached price list")
	}

	grid, err := a.inner.GetGrid(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(grid); err == nil {
		if err := a.cache.Set(ctx, gridCacheKey, encoded, a.ttlSeconds); err != nil {
			a.logger.Warn().Err(err).Msg("failed to cache price list")
		}
	}
	return grid, nil
}

// SaveGrid writes through and drops the cached copy so the next read sees the
// edit immediately instead of after TTL expiry.
func (a *CachedAdapter) SaveGrid(ctx context.Context, grid [][]string) error {
	if err := a.inner.SaveGrid(ctx, grid); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, gridCacheKey); err != nil {
		a.logger.Warn().Err(err).Msg("failed to invalidate cached price list")
	}
	return nil
}
