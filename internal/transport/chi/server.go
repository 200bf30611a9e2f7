// Package chi is the HTTP transport: handlers, middleware and the chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinefinder/internal/domain"
	domcat "github.com/kailas-cloud/dinefinder/internal/domain/catalog"
	"github.com/kailas-cloud/dinefinder/internal/domain/location"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/filter"
	"github.com/kailas-cloud/dinefinder/internal/domain/search/result"
	cataloguc "github.com/kailas-cloud/dinefinder/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/dinefinder/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

type searcher interface {
	Search(ctx context.Context, q location.Query, spec *filter.Spec) (result.Search, error)
}

type restaurantCatalog interface {
	Get(ctx context.Context, id string) (domcat.Entry, error)
	Stats(ctx context.Context) cataloguc.Stats
}

type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	search        searcher
	catalog       restaurantCatalog
	health        healthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search searcher,
	catalog restaurantCatalog,
	health healthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidCoordinate, http.StatusBadRequest),
		sentinelHandler(domain.ErrMissingRequiredField, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests),
	}
	return s
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	stats := s.catalog.Stats(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status:   string(report.Status),
		Checks:   report.Checks,
		Entries:  report.Entries,
		Cuisines: stats.Cuisines,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

type healthResponse struct {
	Status   string                          `json:"status"`
	Checks   map[string]healthuc.CheckResult `json:"checks"`
	Entries  int                             `json:"entries"`
	Cuisines []string                        `json:"cuisines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidCoordinate,
		domain.ErrMissingRequiredField,
		domain.ErrInvalidFilter,
		domain.ErrNotFound,
		domain.ErrRateLimited,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.logger.With(zap.String("request_id", chiMiddleware.GetReqID(r.Context())))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
