// File: internal/usecase/proposal_uc.go
package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/domain/ports/repository"
	"proposal-ai-subscription/internal/infra/metrics"
)

// Compile-time check
var _ ProposalUseCase = (*proposalUC)(nil)

type ProposalUseCase interface {
	// Generate fills the proposal template, scores it, and stores the
	// result. Free-tier users are limited per calendar month.
	Generate(ctx context.Context, userID string, in model.ProposalInput) (*model.Proposal, error)

	// Get returns one of the user's own proposals or domain.ErrNotFound.
	Get(ctx context.Context, userID, proposalID string) (*model.Proposal, error)

	List(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error)
}

type proposalUC struct {
	proposals    repository.ProposalRepository
	quota        repository.QuotaRepository
	subUC        SubscriptionUseCase
	monthlyLimit int
	log          *zerolog.Logger
}

func NewProposalUseCase(proposals repository.ProposalRepository, quota repository.QuotaRepository, subUC SubscriptionUseCase, monthlyLimit int, logger *zerolog.Logger) *proposalUC {
	ucLog := logger.With().Str("component", "ProposalUC").Logger()
	return &proposalUC{
		proposals:    proposals,
		quota:        quota,
		subUC:        subUC,
		monthlyLimit: monthlyLimit,
		log:          &ucLog,
	}
}

var toneIntros = map[model.Tone]string{
	model.ToneFriendly:   "Hey there! 👋 I'm excited to share this proposal with you.",
	model.ToneFormal:     "Dear valued client, I am pleased to present this comprehensive proposal.",
	model.TonePersuasive: "Ready to transform your business? Let me show you how we'll make it happen.",
	model.TonePlayful:    "🎨 Let's create something amazing together! Here's how we'll do it.",
}

func (u *proposalUC) Generate(ctx context.Context, userID string, in model.ProposalInput) (*model.Proposal, error) {
	if userID == "" {
		return nil, domain.ErrInvalidArgument
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	paid, err := u.subUC.HasPaidAccess(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !paid {
		used, err := u.quota.MonthlyCount(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		if used >= u.monthlyLimit {
			metrics.IncProposalQuotaBlocked()
			u.log.Info().Str("user_id", userID).Int("used", used).Msg("free-tier quota exhausted")
			return nil, domain.ErrQuotaExceeded
		}
	}

	p := &model.Proposal{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Input:     in,
		Content:   renderProposal(in),
		Score:     rollScore(),
		CreatedAt: now,
	}
	if err := u.proposals.Save(ctx, p); err != nil {
		return nil, err
	}
	if _, err := u.quota.Increment(ctx, userID, now); err != nil {
		// The proposal is already stored; a lost counter tick only widens
		// the free tier, so log and move on.
		u.log.Warn().Err(err).Str("user_id", userID).Msg("quota increment failed")
	}

	metrics.IncProposalGenerated(string(in.Tone), string(in.Industry))
	u.log.Info().Str("user_id", userID).Str("proposal_id", p.ID).Msg("proposal generated")
	return p, nil
}

func (u *proposalUC) Get(ctx context.Context, userID, proposalID string) (*model.Proposal, error) {
	if userID == "" || proposalID == "" {
		return nil, domain.ErrInvalidArgument
	}
	p, err := u.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	// Ownership is part of lookup: someone else's proposal is not found.
	if p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (u *proposalUC) List(ctx context.Context, userID string, offset, limit int) ([]*model.Proposal, error) {
	if userID == "" {
		return nil, domain.ErrInvalidArgument
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return u.proposals.ListByUser(ctx, userID, offset, limit)
}

// rollScore produces the synthetic resonance triple. The ranges mirror the
// original generator exactly: warmth 80-99, clarity 75-94, confidence 85-104.
func rollScore() model.ResonanceScore {
	return model.ResonanceScore{
		Warmth:     rand.Intn(20) + 80,
		Clarity:    rand.Intn(20) + 75,
		Confidence: rand.Intn(20) + 85,
	}
}

func renderProposal(in model.ProposalInput) string {
	var b strings.Builder

	b.WriteString(toneIntros[in.Tone])
	b.WriteString("\n\nProject Overview\n")
	b.WriteString(in.ProjectDescription)
	b.WriteString("\n\nWhat We'll Deliver\n\n")
	fmt.Fprintf(&b, "Based on your needs for %s in the %s industry, here's what you can expect:\n\n", in.ProjectType, in.Industry)
	b.WriteString(`• Strategic Planning & Research
  - Comprehensive market analysis
  - Competitor insights
  - Target audience identification

• Creative Execution
  - Custom-designed deliverables
  - Brand-aligned messaging
  - Professional quality outputs

• Implementation & Support
  - Seamless project management
  - Regular progress updates
  - Post-launch support

Timeline & Investment

`)
	if in.Budget != "" {
		fmt.Fprintf(&b, "Based on your budget of %s, we've", in.Budget)
	} else {
		b.WriteString("We've")
	}
	b.WriteString(` designed a phased approach that ensures quality without compromise:

Phase 1: Discovery & Strategy (2 weeks)
Phase 2: Design & Development (4-6 weeks)
Phase 3: Testing & Launch (2 weeks)

Why Choose Us?

`)
	fmt.Fprintf(&b, "✨ Proven track record with %s clients\n", in.Industry)
	b.WriteString(`💡 Innovative approach tailored to your goals
🚀 On-time delivery with transparent communication
💪 Dedicated support throughout and beyond

Next Steps

`)
	fmt.Fprintf(&b, "I'd love to schedule a call to discuss this proposal in detail and answer any questions you might have. Let's make %s a resounding success!\n\n", in.ProjectType)
	b.WriteString("Looking forward to working together! 🎉\n\nBest regards,\nYour Partner in Success")

	return b.String()
}
