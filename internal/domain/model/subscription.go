package model

import (
	"time"

	"proposal-ai-subscription/internal/domain"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// Subscription is the single entitlement row per user. It is keyed by
// UserID and mutated only by payment reconciliation (upsert, never delete).
type Subscription struct {
	UserID           string
	PlanID           PlanID
	PlanName         string
	Status           SubscriptionStatus
	ProviderOrderRef string
	UpdatedAt        time.Time
}

// NewActiveSubscription builds the row written after a provider-verified
// payment. The order reference keeps the audit trail back to the provider.
func NewActiveSubscription(userID string, planID PlanID, planName, orderRef string) (*Subscription, error) {
	if userID == "" || planID == "" || planName == "" || orderRef == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &Subscription{
		UserID:           userID,
		PlanID:           planID,
		PlanName:         planName,
		Status:           SubscriptionStatusActive,
		ProviderOrderRef: orderRef,
		UpdatedAt:        time.Now(),
	}, nil
}

// IsActive reports whether the subscription grants paid features.
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == SubscriptionStatusActive
}
