package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/palaniappa-jewellers/backoffice/internal/billing"
	"github.com/palaniappa-jewellers/backoffice/internal/catalog"
	"github.com/palaniappa-jewellers/backoffice/internal/tracking"
	"github.com/palaniappa-jewellers/backoffice/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	CatalogHandler  *catalog.Handler
	BillingHandler  *billing.Handler
	TrackingHandler *tracking.Handler
	JobHandler      *jobs.Handler
}

// NewRouter constructs the chi.Router for the back office API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	admin := RequireAdmin(params.Config.AdminToken)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", params.CatalogHandler.MountRoutes)
		r.Route("/bills", func(r chi.Router) {
			r.Use(admin)
			params.BillingHandler.MountRoutes(r)
		})
		r.Route("/track", params.TrackingHandler.MountRoutes)
	})

	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}

	return r
}
