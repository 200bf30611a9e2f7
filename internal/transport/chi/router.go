package chi

import (
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/dinefinder/internal/metrics"
)

// RouterOptions configures the middleware chain.
type RouterOptions struct {
	Logger  *zap.Logger
	APIKeys []string
	Limiter *rate.Limiter // nil disables rate limiting
}

// NewRouter mounts the API routes behind the standard middleware chain.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gochi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Use(BearerAuthMiddleware(opts.APIKeys))
	r.Use(RateLimitMiddleware(opts.Limiter))

	r.Get("/restaurants", s.SearchRestaurants)
	r.Post("/restaurants", s.SearchRestaurantsByCoordinates)
	r.Get("/restaurants/{id}", s.GetRestaurant)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
