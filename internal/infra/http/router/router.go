package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/hubspot-contact-upsert/internal/config"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/handlers"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/middleware"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/integration/hubspot"
	"github.com/xavierca1/hubspot-contact-upsert/internal/usecase"
)

const UpsertPath = "/update-hubspot-crm"

// Build wires the HubSpot client, use case and handlers from cfg.
func Build(cfg *config.Config, log logrus.FieldLogger) http.Handler {
	client := hubspot.NewClient(cfg.HubSpot.APIKey, cfg.HubSpot.BaseURL, cfg.HubSpot.Timeout)
	upsertUC := usecase.NewUpsertContactUseCase(client)

	return New(cfg, log,
		handlers.NewContactHandler(upsertUC, log),
		handlers.NewHealthHandler(client),
	)
}

func New(cfg *config.Config, log logrus.FieldLogger, contacts *handlers.ContactHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions(cfg.CORS)))

	var upsert chi.Router = r
	if cfg.RateLimitPerMinute > 0 {
		upsert = r.With(middleware.NewRateLimiter(cfg.RateLimitPerMinute).Handler)
	}
	upsert.Post(UpsertPath, contacts.Handle)

	r.Get("/health", health.Handle)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func corsOptions(c config.CORSConfig) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	if c.AllowedOrigin == "" {
		// an empty origin list would mean "*" to cors
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
		return opts
	}
	opts.AllowedOrigins = []string{c.AllowedOrigin}
	return opts
}
