package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"proposal-ai-subscription/internal/domain"
	"proposal-ai-subscription/internal/domain/model"
	"proposal-ai-subscription/internal/infra/logging"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// ---- payment flow ----

type createOrderRequest struct {
	Plan   string `json:"plan"`
	Amount string `json:"amount"`
}

type createOrderResponse struct {
	OrderID     string `json:"orderId"`
	ApprovalURL string `json:"approvalUrl"`
	Status      string `json:"status"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.checkoutUC.CreateOrder(ctx, req.Plan, req.Amount, s.originOf(r))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) || errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Invalid plan or amount")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	writeJSON(w, http.StatusOK, createOrderResponse{
		OrderID:     order.ID,
		ApprovalURL: order.ApprovalURL,
		Status:      string(order.Status),
	})
}

type activateRequest struct {
	OrderID  string `json:"orderId"`
	UserID   string `json:"userId"`
	PlanID   string `json:"planId"`
	PlanName string `json:"planName"`
}

type activateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx = logging.WithOrderID(ctx, req.OrderID)

	result, err := s.activationUC.Activate(ctx, req.OrderID, req.UserID, req.PlanID, req.PlanName)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, "orderId, userId, planId and planName are required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to process payment completion")
		return
	}

	writeJSON(w, http.StatusOK, activateResponse{Success: result.Success, Message: result.Message})
}

// ---- catalog ----

func (s *Server) handlePlansList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planUC.List())
}

// ---- proposals ----

type proposalCreateRequest struct {
	ClientName         string `json:"clientName"`
	ProjectType        string `json:"projectType"`
	ProjectDescription string `json:"projectDescription"`
	Tone               string `json:"tone"`
	Industry           string `json:"industry"`
	Budget             string `json:"budget"`
}

type proposalResponse struct {
	ID         string               `json:"id"`
	ClientName string               `json:"clientName"`
	Content    string               `json:"content"`
	Score      model.ResonanceScore `json:"score"`
	CreatedAt  time.Time            `json:"createdAt"`
}

func toProposalResponse(p *model.Proposal) proposalResponse {
	return proposalResponse{
		ID:         p.ID,
		ClientName: p.Input.ClientName,
		Content:    p.Content,
		Score:      p.Score,
		CreatedAt:  p.CreatedAt,
	}
}

func (s *Server) handleProposalCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := CurrentUser(ctx)

	var req proposalCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := s.proposalUC.Generate(ctx, userID, model.ProposalInput{
		ClientName:         req.ClientName,
		ProjectType:        req.ProjectType,
		ProjectDescription: req.ProjectDescription,
		Tone:               model.Tone(req.Tone),
		Industry:           model.Industry(req.Industry),
		Budget:             req.Budget,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			writeError(w, http.StatusBadRequest, "Missing or invalid proposal fields")
		case errors.Is(err, domain.ErrQuotaExceeded):
			writeError(w, http.StatusForbidden, "Free plan limit reached. Upgrade to keep generating proposals.")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to generate proposal")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toProposalResponse(p))
}

func (s *Server) handleProposalList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := CurrentUser(ctx)

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	proposals, err := s.proposalUC.List(ctx, userID, offset, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list proposals")
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProposalExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := CurrentUser(ctx)
	proposalID := chi.URLParam(r, "id")

	p, err := s.proposalUC.Get(ctx, userID, proposalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidArgument) {
			writeError(w, http.StatusNotFound, "Proposal not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to export proposal")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="proposal-`+p.ID+`.html"`)
	w.WriteHeader(http.StatusOK)
	_ = exportPage.Execute(w, exportPageData{
		ClientName: p.Input.ClientName,
		Content:    p.Content,
		Score:      p.Score,
		CreatedAt:  p.CreatedAt.Format("January 2, 2006"),
	})
}

// ---- subscription ----

type subscriptionResponse struct {
	UserID           string `json:"userId"`
	PlanID           string `json:"planId"`
	PlanName         string `json:"planName"`
	Status           string `json:"status"`
	ProviderOrderRef string `json:"providerOrderReference,omitempty"`
}

func (s *Server) handleSubscriptionMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := CurrentUser(ctx)

	sub, err := s.subUC.Current(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load subscription")
		return
	}

	writeJSON(w, http.StatusOK, subscriptionResponse{
		UserID:           sub.UserID,
		PlanID:           string(sub.PlanID),
		PlanName:         sub.PlanName,
		Status:           string(sub.Status),
		ProviderOrderRef: sub.ProviderOrderRef,
	})
}
