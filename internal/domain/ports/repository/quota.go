package repository

import (
	"context"
	"time"
)

// QuotaRepository tracks per-user monthly proposal usage. Counters are
// bucketed by calendar month and expire on their own.
type QuotaRepository interface {
	// MonthlyCount returns how many proposals the user has generated in
	// the month containing now.
	MonthlyCount(ctx context.Context, userID string, now time.Time) (int, error)

	// Increment bumps the month's counter and returns the new value.
	Increment(ctx context.Context, userID string, now time.Time) (int, error)
}
