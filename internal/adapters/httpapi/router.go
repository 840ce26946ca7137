package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Crestview-Financial/bank-portal-api/internal/platform/metrics"
)

// RouterOptions carries the cross-cutting pieces wired around the handlers.
type RouterOptions struct {
	// AuthMiddleware gates every protected route. Required.
	AuthMiddleware func(http.Handler) http.Handler
	// LoginLimiter, when set, rate-limits POST /login.
	LoginLimiter func(http.Handler) http.Handler
	// Logger feeds the request log and the recovery boundary.
	// slog.Default() when nil.
	Logger *slog.Logger
	// Metrics, when set, instruments requests and exposes GET /metrics.
	Metrics *metrics.Collector
}

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: it wires routes and middleware and
// delegates all behavior to the Server's handlers.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(NewRecoveryMiddleware(logger))

	// Unauthenticated operational surface.
	r.Get("/api/health", s.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Group(func(gr chi.Router) {
		if opts.LoginLimiter != nil {
			gr.Use(opts.LoginLimiter)
		}
		gr.Post("/login", s.handleLogin)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(opts.AuthMiddleware)
		gr.Get("/verify-token", s.handleVerifyToken)
		gr.Get("/credit-score", s.handleCreditScore)
		gr.Get("/cards", s.handleCards)
		gr.Get("/transactions", s.handleTransactions)
		gr.Post("/pay-bill", s.handlePayBill)
	})

	return r
}
