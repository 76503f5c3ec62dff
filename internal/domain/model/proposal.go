package model

import (
	"strings"
	"time"

	"proposal-ai-subscription/internal/domain"
)

// Tone is the closed set of voices a proposal can be written in.
type Tone string

const (
	ToneFriendly   Tone = "friendly"
	ToneFormal     Tone = "formal"
	TonePersuasive Tone = "persuasive"
	TonePlayful    Tone = "playful"
)

func ParseTone(s string) (Tone, error) {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case ToneFriendly:
		return ToneFriendly, nil
	case ToneFormal:
		return ToneFormal, nil
	case TonePersuasive:
		return TonePersuasive, nil
	case TonePlayful:
		return TonePlayful, nil
	default:
		return "", domain.ErrInvalidArgument
	}
}

// Industry is the closed set of client verticals the form offers.
type Industry string

const (
	IndustryMarketing  Industry = "marketing"
	IndustryDesign     Industry = "design"
	IndustryCoaching   Industry = "coaching"
	IndustryTech       Industry = "tech"
	IndustryConsulting Industry = "consulting"
	IndustryOther      Industry = "other"
)

func ParseIndustry(s string) (Industry, error) {
	switch Industry(strings.ToLower(strings.TrimSpace(s))) {
	case IndustryMarketing:
		return IndustryMarketing, nil
	case IndustryDesign:
		return IndustryDesign, nil
	case IndustryCoaching:
		return IndustryCoaching, nil
	case IndustryTech:
		return IndustryTech, nil
	case IndustryConsulting:
		return IndustryConsulting, nil
	case IndustryOther:
		return IndustryOther, nil
	default:
		return "", domain.ErrInvalidArgument
	}
}

// ProposalInput is the client/project form. Tone and industry are rejected
// at the boundary if they fall outside the closed sets.
type ProposalInput struct {
	ClientName         string
	ProjectType        string
	ProjectDescription string
	Tone               Tone
	Industry           Industry
	Budget             string // optional, free text
}

func (in *ProposalInput) Validate() error {
	if strings.TrimSpace(in.ClientName) == "" ||
		strings.TrimSpace(in.ProjectType) == "" ||
		strings.TrimSpace(in.ProjectDescription) == "" {
		return domain.ErrInvalidArgument
	}
	if _, err := ParseTone(string(in.Tone)); err != nil {
		return err
	}
	if _, err := ParseIndustry(string(in.Industry)); err != nil {
		return err
	}
	return nil
}

// ResonanceScore is the synthetic "emotional resonance" triple attached to
// every generated proposal. Fixed shape, no dynamic fields.
type ResonanceScore struct {
	Warmth     int `json:"warmth"`
	Clarity    int `json:"clarity"`
	Confidence int `json:"confidence"`
}

// Proposal is a generated document owned by a user.
type Proposal struct {
	ID        string // ULID
	UserID    string
	Input     ProposalInput
	Content   string
	Score     ResonanceScore
	CreatedAt time.Time
}
