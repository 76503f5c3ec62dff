//go:build !integration

package web_test

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/infra/web"
	"proposal-ai-subscription/internal/usecase"
)

// Stub use cases with overridable Func fields, defaulting to a happy path.

type mockCheckoutUC struct {
	CreateOrderFunc func(ctx context.Context, planID, amount, origin string) (*model.Order, error)
}

var _ usecase.CheckoutUseCase = (*mockCheckoutUC)(nil)

func (m *mockCheckoutUC) CreateOrder(ctx context.Context, planID, amount, origin string) (*model.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, planID, amount, origin)
	}
	return &model.Order{
		ID:          "O1",
		Amount:      amount,
		Currency:    "USD",
		Status:      model.OrderStatusCreated,
		ApprovalURL: "https://pay.example/approve/O1",
	}, nil
}

type mockActivationUC struct {
	ActivateFunc func(ctx context.Context, orderID, userID, planID, planName string) (*usecase.ActivationResult, error)
}

var _ usecase.ActivationUseCase = (*mockActivationUC)(nil)

func (m *mockActivationUC) Activate(ctx context.Context, orderID, userID, planID, planName string) (*usecase.ActivationResult, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, orderID, userID, planID, planName)
	}
	return &usecase.ActivationResult{Success: true, Message: "subscription activated"}, nil
}

type mockSubscriptionUC struct {
	CurrentFunc func(ctx context.Context, userID string) (*model.Subscription, error)
}

var _ usecase.SubscriptionUseCase = (*mockSubscriptionUC)(nil)

func (m *mockSubscriptionUC) Current(ctx context.Context, userID string) (*model.Subscription, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, userID)
	}
	return &model.Subscription{
		UserID:   userID,
		PlanID:   model.PlanFree,
		PlanName: "Free",
		Status:   model.SubscriptionStatusInactive,
	}, nil
}

func (m *mockSubscriptionUC) HasPaidAccess(ctx context.Context, userID string) (bool, error) {
	sub, err := m.Current(ctx, userID)
	if err != nil {
		return false, err
	}
	return sub.IsActive() && sub.PlanID != model.PlanFree, nil
}

type mockProposalUC struct {
	GenerateFunc func(ctx context.Context, userID string, in model.ProposalInput) (*model.Proposal, error)
	GetFunc      func(ctx context.Context, userID, proposalID string) (*model.Proposal, error)
	ListFunc     func(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error)
}

var _ usecase.ProposalUseCase = (*mockProposalUC)(nil)

func sampleProposal(userID string) *model.Proposal {
	return &model.Proposal{
		ID:     "01JPROPOSAL0000000000000000",
		UserID: userID,
		Input: model.ProposalInput{
			ClientName:         "Acme Corp",
			ProjectType:        "website redesign",
			ProjectDescription: "A full refresh.",
			Tone:               model.ToneFriendly,
			Industry:           model.IndustryTech,
		},
		Content:   "Hey there! 👋 I'm excited to share this proposal with you.",
		Score:     model.ResonanceScore{Warmth: 90, Clarity: 85, Confidence: 95},
		CreatedAt: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockProposalUC) Generate(ctx context.Context, userID string, in model.ProposalInput) (*model.Proposal, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, userID, in)
	}
	return sampleProposal(userID), nil
}

func (m *mockProposalUC) Get(ctx context.Context, userID, proposalID string) (*model.Proposal, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, proposalID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProposalUC) List(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, offset, limit)
	}
	return []*model.Proposal{sampleProposal(userID)}, nil
}

// serverDeps bundles the stubs behind a ready-to-serve router.
type serverDeps struct {
	checkout   *mockCheckoutUC
	activation *mockActivationUC
	subs       *mockSubscriptionUC
	proposals  *mockProposalUC
	auth       *web.AuthManager
	server     *web.Server
}

func newServerDeps() *serverDeps {
	logger := zerolog.New(io.Discard)
	d := &serverDeps{
		checkout:   &mockCheckoutUC{},
		activation: &mockActivationUC{},
		subs:       &mockSubscriptionUC{},
		proposals:  &mockProposalUC{},
		auth:       web.NewAuthManager("test-secret", time.Hour),
	}
	d.server = web.NewServer(
		d.checkout,
		d.activation,
		d.subs,
		usecase.NewPlanUseCase(model.DefaultCatalog()),
		d.proposals,
		d.auth,
		"https://app.example",
		&logger,
	)
	return d
}
