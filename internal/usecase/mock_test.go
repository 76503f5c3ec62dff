//go:build !integration

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/adapter"
	"proposal-ai-subscription/internal/domain/ports/repository"
)

// -----------------------------
// Gateway
// -----------------------------

// MockPaymentGateway stands in for the provider. Defaults produce a happy
// path; tests override the Func fields to steer behavior and count calls.
type MockPaymentGateway struct {
	NameVal string

	CreateOrderFunc func(ctx context.Context, req adapter.OrderRequest) (*model.Order, error)
	GetOrderFunc    func(ctx context.Context, orderID string) (*model.Order, error)

	mu          sync.Mutex
	CreateCalls int
	GetCalls    int
}

var _ adapter.PaymentGateway = (*MockPaymentGateway)(nil)

func (m *MockPaymentGateway) Name() string {
	if m.NameVal == "" {
		return "mockpay"
	}
	return m.NameVal
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, req adapter.OrderRequest) (*model.Order, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return &model.Order{
		ID:          "O1",
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      model.OrderStatusCreated,
		ApprovalURL: "https://pay.example/approve/O1",
	}, nil
}

func (m *MockPaymentGateway) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusCompleted}, nil
}

// -----------------------------
// Repositories
// -----------------------------

// MockSubscriptionRepo is a small in-memory implementation used by unit tests.
type MockSubscriptionRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Subscription // keyed by user ID

	UpsertFunc  func(ctx context.Context, sub *model.Subscription) error
	UpsertCalls int
}

var _ repository.SubscriptionRepository = (*MockSubscriptionRepo)(nil)

func NewMockSubscriptionRepo() *MockSubscriptionRepo {
	return &MockSubscriptionRepo{store: make(map[string]*model.Subscription)}
}

func (m *MockSubscriptionRepo) Upsert(ctx context.Context, sub *model.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sub)
	}
	cp := *sub
	m.store[sub.UserID] = &cp
	return nil
}

func (m *MockSubscriptionRepo) FindByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MockSubscriptionRepo) CountByStatus(ctx context.Context) (map[model.SubscriptionStatus]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[model.SubscriptionStatus]int)
	for _, s := range m.store {
		out[s.Status]++
	}
	return out, nil
}

// Len reports the number of stored rows, for idempotency assertions.
func (m *MockSubscriptionRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// MockProposalRepo stores proposals in memory.
type MockProposalRepo struct {
	mu    sync.RWMutex
	store map[string]*model.Proposal

	SaveFunc func(ctx context.Context, p *model.Proposal) error
}

var _ repository.ProposalRepository = (*MockProposalRepo)(nil)

func NewMockProposalRepo() *MockProposalRepo {
	return &MockProposalRepo{store: make(map[string]*model.Proposal)}
}

func (m *MockProposalRepo) Save(ctx context.Context, p *model.Proposal) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.store[p.ID]; exists {
		return domain.ErrOperationFailed
	}
	cp := *p
	m.store[p.ID] = &cp
	return nil
}

func (m *MockProposalRepo) FindByID(ctx context.Context, id string) (*model.Proposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockProposalRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var all []*model.Proposal
	for _, p := range m.store {
		if p.UserID == userID {
			cp := *p
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockProposalRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// MockQuotaRepo counts per user and calendar month, like the redis one.
type MockQuotaRepo struct {
	mu     sync.Mutex
	counts map[string]int

	CountErr     error
	IncrementErr error
}

var _ repository.QuotaRepository = (*MockQuotaRepo)(nil)

func NewMockQuotaRepo() *MockQuotaRepo {
	return &MockQuotaRepo{counts: make(map[string]int)}
}

func quotaKey(userID string, at time.Time) string {
	return fmt.Sprintf("%s:%s", userID, at.UTC().Format("2006-01"))
}

func (m *MockQuotaRepo) MonthlyCount(ctx context.Context, userID string, at time.Time) (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[quotaKey(userID, at)], nil
}

func (m *MockQuotaRepo) Increment(ctx context.Context, userID string, at time.Time) (int, error) {
	if m.IncrementErr != nil {
		return 0, m.IncrementErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := quotaKey(userID, at)
	m.counts[k]++
	return m.counts[k], nil
}

// -----------------------------
// Utilities
// -----------------------------

// newTestLogger creates a silent zerolog.Logger for use in tests.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}
