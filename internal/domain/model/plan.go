package model

import (
	"strings"

	"proposal-ai-subscription/internal/domain"
)

// PlanID is the closed set of plan identifiers the catalog knows about.
type PlanID string

const (
	PlanFree       PlanID = "free"
	PlanPro        PlanID = "pro"
	PlanEnterprise PlanID = "enterprise"
)

// ParsePlanID validates a raw identifier against the closed set.
func ParsePlanID(s string) (PlanID, error) {
	switch PlanID(strings.ToLower(strings.TrimSpace(s))) {
	case PlanFree:
		return PlanFree, nil
	case PlanPro:
		return PlanPro, nil
	case PlanEnterprise:
		return PlanEnterprise, nil
	default:
		return "", domain.ErrInvalidArgument
	}
}

// Plan is a purchasable tier. Prices are decimal strings because that is
// what the payment provider's order API takes; the catalog is fixed at USD.
type Plan struct {
	ID       PlanID `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Price    string `yaml:"price" json:"price"`
	Currency string `yaml:"currency" json:"currency"`
}

func (p Plan) IsZero() bool { return p.ID == "" }

// Paid reports whether the plan requires a completed payment.
func (p Plan) Paid() bool { return p.ID != PlanFree && p.Price != "0" && p.Price != "0.00" }

// Catalog is the immutable plan set loaded from static configuration.
type Catalog struct {
	plans []Plan
}

func NewCatalog(plans []Plan) *Catalog {
	cp := make([]Plan, len(plans))
	copy(cp, plans)
	return &Catalog{plans: cp}
}

// DefaultCatalog mirrors the shipped pricing table.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Plan{
		{ID: PlanFree, Name: "Free", Price: "0.00", Currency: "USD"},
		{ID: PlanPro, Name: "Pro", Price: "29.00", Currency: "USD"},
		{ID: PlanEnterprise, Name: "Enterprise", Price: "99.00", Currency: "USD"},
	})
}

func (c *Catalog) FindByID(id PlanID) (Plan, error) {
	for _, p := range c.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, domain.ErrNotFound
}

func (c *Catalog) List() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}
