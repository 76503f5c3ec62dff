package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/repository"
	"proposal-ai-subscription/internal/infra/metrics"
	red "proposal-ai-subscription/internal/infra/redis"
)

var _ repository.SubscriptionRepository = (*subscriptionRepoCacheDecorator)(nil)

// subscriptionRepoCacheDecorator caches per-user subscription lookups in
// Redis. Writes invalidate before hitting the inner repo so a failed upsert
// never leaves a stale active row cached.
type subscriptionRepoCacheDecorator struct {
	inner repository.SubscriptionRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewSubscriptionRepoCacheDecorator(inner repository.SubscriptionRepository, cache red.RedisClient, ttl time.Duration) repository.SubscriptionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &subscriptionRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func subCacheKey(userID string) string { return fmt.Sprintf("subscription:%s", userID) }

func (d *subscriptionRepoCacheDecorator) FindByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	key := subCacheKey(userID)
	if val, err := d.cache.Get(ctx, key); err == nil {
		var sub model.Subscription
		if json.Unmarshal([]byte(val), &sub) == nil {
			metrics.IncCacheRequest("subscription", "hit")
			return &sub, nil
		}
	}

	metrics.IncCacheRequest("subscription", "miss")
	sub, err := d.inner.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bytes, err := json.Marshal(sub); err == nil {
		_ = d.cache.Set(ctx, key, bytes, d.ttl)
	}
	return sub, nil
}

func (d *subscriptionRepoCacheDecorator) Upsert(ctx context.Context, sub *model.Subscription) error {
	_ = d.cache.Del(ctx, subCacheKey(sub.UserID))
	return d.inner.Upsert(ctx, sub)
}

func (d *subscriptionRepoCacheDecorator) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	// Metric snapshots want fresh numbers; no caching here.
	return d.inner.CountByStatus(ctx)
}
