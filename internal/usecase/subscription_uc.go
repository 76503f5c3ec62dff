// File: internal/usecase/subscription_uc.go
package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/repository"
)

// Compile-time check
var _ SubscriptionUseCase = (*subscriptionUC)(nil)

type SubscriptionUseCase interface {
	// Current returns the user's subscription row. Users without one get
	// an inactive free-tier placeholder rather than an error.
	Current(ctx context.Context, userID string) (*model.Subscription, error)

	// HasPaidAccess reports whether the user holds an active paid plan.
	HasPaidAccess(ctx context.Context, userID string) (bool, error)
}

type subscriptionUC struct {
	subs repository.SubscriptionRepository
	log  *zerolog.Logger
}

func NewSubscriptionUseCase(subs repository.SubscriptionRepository, logger *zerolog.Logger) *subscriptionUC {
	ucLog := logger.With().Str("component", "SubscriptionUC").Logger()
	return &subscriptionUC{subs: subs, log: &ucLog}
}

func (u *subscriptionUC) Current(ctx context.Context, userID string) (*model.Subscription, error) {
	if userID == "" {
		return nil, domain.ErrInvalidArgument
	}
	sub, err := u.subs.FindByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &model.Subscription{
			UserID:   userID,
			PlanID:   model.PlanFree,
			PlanName: "Free",
			Status:   model.SubscriptionStatusInactive,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (u *subscriptionUC) HasPaidAccess(ctx context.Context, userID string) (bool, error) {
	sub, err := u.Current(ctx, userID)
	if err != nil {
		return false, err
	}
	return sub.IsActive() && sub.PlanID != model.PlanFree, nil
}
