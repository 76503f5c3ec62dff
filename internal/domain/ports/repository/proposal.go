package repository

import (
	"context"

	"proposal-ai-subscription/internal/domain/model"
)

// ProposalRepository stores generated proposals per user.
type ProposalRepository interface {
	Save(ctx context.Context, p *model.Proposal) error
	FindByID(ctx context.Context, id string) (*model.Proposal, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error)
}
