package repository

import (
	"context"

	"proposal-ai-subscription/internal/domain/model"
)

// SubscriptionRepository persists the one-row-per-user entitlement.
type SubscriptionRepository interface {
	// Upsert inserts or updates the row keyed by UserID. It must be
	// atomic and idempotent: webhook replays for the same order land on
	// the same row with the same final values.
	Upsert(ctx context.Context, sub *model.Subscription) error

	// FindByUser returns the user's subscription row or domain.ErrNotFound.
	FindByUser(ctx context.Context, userID string) (*model.Subscription, error)

	// CountByStatus reports row counts per status for metrics.
	CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error)
}
