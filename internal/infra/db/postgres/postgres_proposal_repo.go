package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/repository"
)

// Ensure interface compliance
var _ repository.ProposalRepository = (*PostgresProposalRepo)(nil)

type PostgresProposalRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresProposalRepo(pool *pgxpool.Pool) *PostgresProposalRepo {
	return &PostgresProposalRepo{pool: pool}
}

const proposalColumns = `
id, user_id, client_name, project_type, project_description, tone, industry,
budget, content, warmth, clarity, confidence, created_at`

func (r *PostgresProposalRepo) Save(ctx context.Context, p *model.Proposal) error {
	const sql = `
INSERT INTO proposals (
  id, user_id, client_name, project_type, project_description, tone, industry,
  budget, content, warmth, clarity, confidence, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13);
`
	_, err := r.pool.Exec(ctx, sql,
		p.ID, p.UserID,
		p.Input.ClientName, p.Input.ProjectType, p.Input.ProjectDescription,
		p.Input.Tone, p.Input.Industry, p.Input.Budget,
		p.Content, p.Score.Warmth, p.Score.Clarity, p.Score.Confidence,
		p.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrOperationFailed
		}
		return fmt.Errorf("Save proposal: %w", err)
	}
	return nil
}

func (r *PostgresProposalRepo) FindByID(ctx context.Context, id string) (*model.Proposal, error) {
	const sql = `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1;`
	row := r.pool.QueryRow(ctx, sql, id)
	p, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("FindByID proposal: %w", err)
	}
	return p, nil
}

func (r *PostgresProposalRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error) {
	const sql = `
SELECT ` + proposalColumns + `
  FROM proposals
 WHERE user_id = $1
 ORDER BY created_at DESC
 OFFSET $2 LIMIT $3;
`
	rows, err := r.pool.Query(ctx, sql, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("ListByUser proposals: %w", err)
	}
	defer rows.Close()
	var out []*model.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrReadDatabaseRow
	}
	return out, nil
}

func scanProposal(row pgx.Row) (*model.Proposal, error) {
	var p model.Proposal
	if err := row.Scan(
		&p.ID, &p.UserID,
		&p.Input.ClientName, &p.Input.ProjectType, &p.Input.ProjectDescription,
		&p.Input.Tone, &p.Input.Industry, &p.Input.Budget,
		&p.Content, &p.Score.Warmth, &p.Score.Clarity, &p.Score.Confidence,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
