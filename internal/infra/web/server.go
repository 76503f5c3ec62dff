package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"proposal-ai-subscription/internal/usecase"
)

// Server wires the HTTP surface: checkout and activation for the payment
// flow, proposal generation, and the server-rendered orchestrator pages.
type Server struct {
	checkoutUC   usecase.CheckoutUseCase
	activationUC usecase.ActivationUseCase
	subUC        usecase.SubscriptionUseCase
	planUC       usecase.PlanUseCase
	proposalUC   usecase.ProposalUseCase
	auth         *AuthManager
	baseURL      string
	log          *zerolog.Logger
}

func NewServer(
	checkoutUC usecase.CheckoutUseCase,
	activationUC usecase.ActivationUseCase,
	subUC usecase.SubscriptionUseCase,
	planUC usecase.PlanUseCase,
	proposalUC usecase.ProposalUseCase,
	auth *AuthManager,
	baseURL string,
	logger *zerolog.Logger,
) *Server {
	srvLog := logger.With().Str("component", "WebServer").Logger()
	return &Server{
		checkoutUC:   checkoutUC,
		activationUC: activationUC,
		subUC:        subUC,
		planUC:       planUC,
		proposalUC:   proposalUC,
		auth:         auth,
		baseURL:      baseURL,
		log:          &srvLog,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(TraceID())
	r.Use(Recover(s.log))
	r.Use(RequestLog(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/pricing", s.handlePricingPage)
	r.Get("/api/v1/plans", s.handlePlansList)
	r.Post("/api/v1/orders", s.handleCreateOrder)
	r.Post("/api/v1/payments/activate", s.handleActivate)

	r.Group(func(r chi.Router) {
		r.Use(s.auth.RequireUser)
		r.Get("/payment-success", s.handlePaymentSuccess)
		r.Post("/api/v1/proposals", s.handleProposalCreate)
		r.Get("/api/v1/proposals", s.handleProposalList)
		r.Get("/api/v1/proposals/{id}/export", s.handleProposalExport)
		r.Get("/api/v1/subscriptions/me", s.handleSubscriptionMe)
	})

	return r
}

// originOf anchors redirect targets to the caller's origin, falling back to
// the configured public base URL.
func (s *Server) originOf(r *http.Request) string {
	if o := r.Header.Get("Origin"); o != "" {
		return o
	}
	return s.baseURL
}
