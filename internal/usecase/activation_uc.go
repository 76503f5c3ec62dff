// File: internal/usecase/activation_uc.go
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/adapter"
	"proposal-ai-subscription/internal/domain/ports/repository"
	"proposal-ai-subscription/internal/infra/metrics"
)

// Compile-time check
var _ ActivationUseCase = (*activationUC)(nil)

// ActivationResult is the outcome of a reconciliation attempt. An order the
// provider has not completed yet is a normal negative result, not an error:
// state stays untouched so a later correct delivery can still succeed.
type ActivationResult struct {
	Success bool
	Message string
}

type ActivationUseCase interface {
	// Activate re-verifies the order directly with the payment provider
	// and, if and only if it is COMPLETED, upserts the user's subscription
	// row. Safe to invoke repeatedly for the same completed order.
	Activate(ctx context.Context, orderID, userID, planID, planName string) (*ActivationResult, error)
}

type activationUC struct {
	subs    repository.SubscriptionRepository
	gateway adapter.PaymentGateway
	log     *zerolog.Logger
}

func NewActivationUseCase(subs repository.SubscriptionRepository, gateway adapter.PaymentGateway, logger *zerolog.Logger) *activationUC {
	ucLog := logger.With().Str("component", "ActivationUC").Logger()
	return &activationUC{subs: subs, gateway: gateway, log: &ucLog}
}

func (u *activationUC) Activate(ctx context.Context, orderID, userID, planID, planName string) (*ActivationResult, error) {
	start := time.Now()

	// All four fields are required; nothing is attempted against the
	// provider on a malformed request.
	if orderID == "" || userID == "" || planID == "" || planName == "" {
		metrics.IncPaymentVerify("fail", "missing_field")
		return nil, domain.ErrInvalidArgument
	}
	pid, err := model.ParsePlanID(planID)
	if err != nil {
		metrics.IncPaymentVerify("fail", "missing_field")
		return nil, err
	}

	// The caller-claimed status is never trusted; the provider lookup is
	// the sole source of truth.
	order, err := u.gateway.GetOrder(ctx, orderID)
	if err != nil {
		metrics.IncPaymentVerify("fail", "provider_error")
		metrics.ObservePaymentVerifyDuration("fail", time.Since(start).Seconds())
		u.log.Error().Err(err).Str("order_id", orderID).Msg("provider order lookup failed")
		return nil, err
	}

	if order.Status != model.OrderStatusCompleted {
		metrics.IncPaymentVerify("fail", "not_completed")
		metrics.ObservePaymentVerifyDuration("fail", time.Since(start).Seconds())
		u.log.Warn().Str("order_id", orderID).Str("status", string(order.Status)).Msg("order not completed; subscription left untouched")
		return &ActivationResult{
			Success: false,
			Message: fmt.Sprintf("payment not completed (status %s)", order.Status),
		}, nil
	}

	sub, err := model.NewActiveSubscription(userID, pid, planName, orderID)
	if err != nil {
		metrics.IncPaymentVerify("fail", "unknown")
		return nil, err
	}
	if err := u.subs.Upsert(ctx, sub); err != nil {
		metrics.IncPaymentVerify("fail", "store_error")
		metrics.ObservePaymentVerifyDuration("fail", time.Since(start).Seconds())
		u.log.Error().Err(err).Str("order_id", orderID).Str("user_id", userID).Msg("subscription upsert failed")
		return nil, err
	}

	metrics.IncPaymentVerify("ok", "")
	metrics.IncSubscriptionActivated(string(pid))
	metrics.ObservePaymentVerifyDuration("ok", time.Since(start).Seconds())
	u.log.Info().Str("order_id", orderID).Str("user_id", userID).Str("plan", string(pid)).Msg("subscription activated")
	return &ActivationResult{Success: true, Message: "subscription activated"}, nil
}
