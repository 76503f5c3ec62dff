package adapter

import (
	"context"

	"proposal-ai-subscription/internal/domain/model"
)

// OrderRequest carries everything the provider needs to create an order.
// Redirect targets are anchored to the caller's origin by the web layer.
type OrderRequest struct {
	Amount      string // positive decimal string, e.g. "29.00"
	Currency    string // fixed "USD" at the payment layer
	Description string // human-readable, derived from the plan name
	ReturnURL   string
	CancelURL   string
}

// PaymentGateway is the hex port for the payment provider.
type PaymentGateway interface {
	Name() string

	// CreateOrder exchanges client credentials for a bearer token and
	// creates a capture-intent order, returning the provider order with
	// its approval redirect URL. A 2xx response without an approval link
	// yields an order with an empty ApprovalURL; the caller must check.
	CreateOrder(ctx context.Context, req OrderRequest) (*model.Order, error)

	// GetOrder re-fetches an order by provider id with a fresh credential
	// exchange. This is the sole source of truth for payment status.
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
}
