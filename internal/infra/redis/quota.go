package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"proposal-ai-subscription/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.QuotaRepository = (*MonthlyQuota)(nil)

// MonthlyQuota tracks per-user proposal counts in calendar-month buckets.
// Keys carry their own expiry so stale months clean themselves up.
type MonthlyQuota struct {
	client RedisClient
}

func NewMonthlyQuota(client RedisClient) *MonthlyQuota {
	return &MonthlyQuota{client: client}
}

func quotaKey(userID string, now time.Time) string {
	return fmt.Sprintf("quota:proposals:%s:%s", userID, now.UTC().Format("2006-01"))
}

func (q *MonthlyQuota) MonthlyCount(ctx context.Context, userID string, now time.Time) (int, error) {
	val, err := q.client.Get(ctx, quotaKey(userID, now))
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (q *MonthlyQuota) Increment(ctx context.Context, userID string, now time.Time) (int, error) {
	key := quotaKey(userID, now)
	count, err := q.client.Incr(ctx, key)
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// 62 days outlives any calendar month; the key is never read
		// after its month ends.
		if err := q.client.Expire(ctx, key, 62*24*time.Hour); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}
