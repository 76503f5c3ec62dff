package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.SubscriptionRepository = (*PostgresSubscriptionRepo)(nil)

type PostgresSubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresSubscriptionRepo(pool *pgxpool.Pool) *PostgresSubscriptionRepo {
	return &PostgresSubscriptionRepo{pool: pool}
}

// Upsert writes the single subscription row per user. The ON CONFLICT arm
// makes webhook replays land on the same row with the same final values.
func (r *PostgresSubscriptionRepo) Upsert(ctx context.Context, sub *model.Subscription) error {
	const sql = `
INSERT INTO subscriptions (user_id, plan_id, plan_name, status, provider_order_reference, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE
  SET plan_id                  = EXCLUDED.plan_id,
      plan_name                = EXCLUDED.plan_name,
      status                   = EXCLUDED.status,
      provider_order_reference = EXCLUDED.provider_order_reference,
      updated_at               = EXCLUDED.updated_at;
`
	_, err := r.pool.Exec(ctx, sql,
		sub.UserID, sub.PlanID, sub.PlanName, sub.Status, sub.ProviderOrderRef, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Upsert subscription: %w", err)
	}
	return nil
}

func (r *PostgresSubscriptionRepo) FindByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	const sql = `
SELECT user_id, plan_id, plan_name, status, provider_order_reference, updated_at
  FROM subscriptions
 WHERE user_id = $1;
`
	row := r.pool.QueryRow(ctx, sql, userID)
	var s model.Subscription
	if err := row.Scan(&s.UserID, &s.PlanID, &s.PlanName, &s.Status, &s.ProviderOrderRef, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("FindByUser subscription: %w", err)
	}
	return &s, nil
}

func (r *PostgresSubscriptionRepo) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	const sql = `
SELECT status, COUNT(*)
  FROM subscriptions
 GROUP BY status;
`
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus subscriptions: %w", err)
	}
	defer rows.Close()
	m := make(map[model.SubscriptionStatus]int)
	for rows.Next() {
		var status model.SubscriptionStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		m[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrReadDatabaseRow
	}
	return m, nil
}
