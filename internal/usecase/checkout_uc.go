// File: internal/usecase/checkout_uc.go
package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/adapter"
	"proposal-ai-subscription/internal/infra/metrics"
)

// Compile-time check
var _ CheckoutUseCase = (*checkoutUC)(nil)

type CheckoutUseCase interface {
	// CreateOrder creates a provider order for the plan and returns it with
	// the approval redirect URL. Redirect targets are anchored to origin.
	CreateOrder(ctx context.Context, planID, amount, origin string) (*model.Order, error)
}

type checkoutUC struct {
	catalog *model.Catalog
	gateway adapter.PaymentGateway
	log     *zerolog.Logger
}

func NewCheckoutUseCase(catalog *model.Catalog, gateway adapter.PaymentGateway, logger *zerolog.Logger) *checkoutUC {
	ucLog := logger.With().Str("component", "CheckoutUC").Logger()
	return &checkoutUC{catalog: catalog, gateway: gateway, log: &ucLog}
}

// amountRe accepts positive decimal strings with up to two fraction digits.
var amountRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func (u *checkoutUC) CreateOrder(ctx context.Context, planID, amount, origin string) (*model.Order, error) {
	pid, err := model.ParsePlanID(planID)
	if err != nil {
		return nil, err
	}
	if !amountRe.MatchString(amount) || strings.Trim(amount, "0.") == "" {
		return nil, domain.ErrInvalidArgument
	}
	// The amount is not checked against the catalog price; the order is
	// created with whatever the caller sent.
	plan, err := u.catalog.FindByID(pid)
	if err != nil {
		return nil, err
	}

	order, err := u.gateway.CreateOrder(ctx, adapter.OrderRequest{
		Amount:      amount,
		Currency:    "USD",
		Description: plan.Name + " Plan Subscription",
		ReturnURL:   origin + "/payment-success",
		CancelURL:   origin + "/pricing",
	})
	if err != nil {
		metrics.IncOrderCreated(string(pid), "fail")
		u.log.Error().Err(err).Str("plan", string(pid)).Msg("order creation failed")
		return nil, err
	}

	metrics.IncOrderCreated(string(pid), "ok")
	u.log.Info().Str("plan", string(pid)).Str("order_id", order.ID).Str("status", string(order.Status)).Msg("order created")
	return order, nil
}
