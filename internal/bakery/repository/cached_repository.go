package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bakerydir/internal/bakery/domain"
	"bakerydir/pkg/logger"
)

const (
	bakeryListKey = "bakeries:all"
	bakeryListTTL = 5 * time.Minute
)

// CachedBakeryRepository wraps a BakeryRepository with a Redis read-through
// cache for the directory listing. A nil client disables caching, so the
// decorator is safe to wire unconditionally.
type CachedBakeryRepository struct {
	inner domain.BakeryRepository
	redis *redis.Client
}

// NewCachedBakeryRepository creates a cached bakery repository
func NewCachedBakeryRepository(inner domain.BakeryRepository, client *redis.Client) *CachedBakeryRepository {
	return &CachedBakeryRepository{inner: inner, redis: client}
}

// FindAll serves the listing from cache when possible. Cache failures fall
// through to the store: a broken Redis never fails a read.
func (r *CachedBakeryRepository) FindAll(ctx context.Context) ([]domain.Bakery, error) {
	if r.redis == nil {
		return r.inner.FindAll(ctx)
	}

	if cached, err := r.redis.Get(ctx, bakeryListKey).Bytes(); err == nil {
		var bakeries []domain.Bakery
		if err := json.Unmarshal(cached, &bakeries); err == nil {
			logger.Debug(ctx).Str("key", bakeryListKey).Msg("Bakery list cache hit")
			return bakeries, nil
		}
	}

	bakeries, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(bakeries); err == nil {
		if err := r.redis.Set(ctx, bakeryListKey, payload, bakeryListTTL).Err(); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to cache bakery list")
		}
	}

	return bakeries, nil
}

// Invalidate drops the cached listing. Called after a rating recompute
// rewrites a bakery's denormalized rating.
func (r *CachedBakeryRepository) Invalidate(ctx context.Context) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, bakeryListKey).Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to invalidate bakery list cache")
	}
}
