package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hirequality/internal/domain/auth"
	"hirequality/internal/domain/hirequality"
	"hirequality/internal/domain/hires"
	"hirequality/internal/platform/config"
	"hirequality/internal/platform/metrics"
	"hirequality/internal/render"
	"hirequality/internal/transport/http/api"
	hirequalityhandler "hirequality/internal/transport/http/handlers/hirequality"
	hireshandler "hirequality/internal/transport/http/handlers/hires"
	"hirequality/internal/transport/http/middleware"
)

type Deps struct {
	Config  config.Config
	Store   hires.Store
	Metrics *metrics.Collector
	Logger  *slog.Logger
	Limiter *middleware.RateLimiter
}

func newLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	})
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Limiter == nil {
		deps.Limiter = newLimiter(cfg)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(deps.Logger, deps.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction(), "'unsafe-inline'", render.ChartJSURL))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := deps.Store.Ping(ctx); err != nil {
			slog.WarnContext(r.Context(), "readiness check failed", "err", err)
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, deps.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	guard := func(next http.Handler) http.Handler { return next }
	if cfg.JWTSecret != "" {
		guard = middleware.RequireRole(auth.DashboardRoles...)
	}

	service := hirequality.NewService(deps.Store, deps.Metrics)
	qualityHandler := hirequalityhandler.NewHandler(service, deps.Metrics, guard)
	hiresHandler := hireshandler.NewHandler(deps.Store, guard)

	router.Group(func(r chi.Router) {
		r.Use(deps.Limiter.Middleware)
		r.Route("/api/v1", func(r chi.Router) {
			hiresHandler.RegisterRoutes(r)
			qualityHandler.RegisterRoutes(r)
		})
		qualityHandler.RegisterPage(r)
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/hire-quality", http.StatusFound)
	})

	return router
}
