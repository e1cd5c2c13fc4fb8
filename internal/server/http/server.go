// Package httpserver provides the HTTP REST API server for the business
// review service.
package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/placehub/business-review-service/internal/database"
	"github.com/placehub/business-review-service/internal/hypermedia"
	"github.com/placehub/business-review-service/internal/observability"
	"github.com/placehub/business-review-service/internal/repository"
)

// Server is the HTTP REST API server.
type Server struct {
	router       chi.Router
	httpServer   *http.Server
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
	db           *database.DB
	logger       zerolog.Logger
	metrics      *observability.Metrics
	validate     *validator.Validate
	limiter      *rate.Limiter
	pageSize     int
	metricsPath  string
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// RateLimitRPS caps the per-process request rate. Zero disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// PageSize is the number of entries per page on the business listing.
	PageSize int

	// MetricsPath exposes the Prometheus handler when non-empty.
	MetricsPath string
}

// NewServer creates a new HTTP server with all dependencies. metrics may
// be nil, in which case no metrics are recorded and no metrics endpoint
// is mounted.
func NewServer(
	cfg Config,
	businessRepo repository.BusinessRepository,
	reviewRepo repository.ReviewRepository,
	db *database.DB,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		db:           db,
		logger:       logger.With().Str("component", "http-server").Logger(),
		metrics:      metrics,
		validate:     newValidator(),
		pageSize:     cfg.PageSize,
		metricsPath:  cfg.MetricsPath,
	}

	if s.pageSize <= 0 {
		s.pageSize = hypermedia.DefaultPageSize
	}

	if cfg.RateLimitRPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// newValidator builds the request validator, reporting fields by their
// JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogMiddleware)
	if s.limiter != nil {
		r.Use(s.rateLimitMiddleware)
	}
	r.Use(jsonContentTypeMiddleware)

	// Health endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	if s.metrics != nil && s.metricsPath != "" {
		r.Handle(s.metricsPath, promhttp.Handler())
	}

	r.Route("/businesses", func(r chi.Router) {
		r.Post("/", s.createBusiness)
		r.Get("/", s.listBusinesses)
		r.Get("/{businessID}", s.getBusiness)
		r.Put("/{businessID}", s.updateBusiness)
		r.Delete("/{businessID}", s.deleteBusiness)
	})
	r.Get("/owners/{ownerID}/businesses", s.listBusinessesByOwner)

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", s.createReview)
		r.Get("/{reviewID}", s.getReview)
		r.Put("/{reviewID}", s.updateReview)
		r.Delete("/{reviewID}", s.deleteReview)
	})
	r.Get("/users/{userID}/reviews", s.listReviewsByUser)

	return r
}

// Router exposes the underlying handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status == "healthy" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": health.Status})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":   "unhealthy",
		"database": health.Status,
		"error":    health.Error,
	})
}

// readinessHandler returns readiness status.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	if health.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}
