package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/marketing-studio/internal/transport/middleware"
)

// RouterDeps collects the handlers and middleware mounted by NewRouter.
type RouterDeps struct {
	Health    *HealthHandler
	Generate  *GenerateHandler
	History   *HistoryHandler
	Clients   *ClientsHandler
	Analytics *AnalyticsHandler
	Metrics   http.Handler

	// Middleware wraps every route, outermost first.
	Middleware    []middleware.Middleware
	// APIMiddleware wraps the /api routes only, inside Middleware.
	APIMiddleware []middleware.Middleware
	// GenerateLimit wraps the generation routes only. Optional.
	GenerateLimit middleware.Middleware
}

// NewRouter builds the HTTP route tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	for _, mw := range d.Middleware {
		r.Use(mw)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		for _, mw := range d.APIMiddleware {
			r.Use(mw)
		}

		r.Route("/generate", func(r chi.Router) {
			if d.GenerateLimit != nil {
				r.Use(d.GenerateLimit)
			}
			r.Post("/ideas", d.Generate.Ideas)
			r.Post("/social-post", d.Generate.SocialPost)
			r.Post("/email", d.Generate.EmailCampaign)
			r.Post("/ad-copy", d.Generate.AdCopy)
			r.Post("/image", d.Generate.Image)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", d.History.List)
			r.Delete("/", d.History.Clear)
			r.Get("/{id}", d.History.Get)
			r.Get("/{id}/image", d.History.Image)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", d.Clients.List)
			r.Post("/", d.Clients.Create)
			r.Post("/import", d.Clients.Import)
			r.Get("/export.csv", d.Clients.ExportCSV)
			r.Get("/export.xlsx", d.Clients.ExportXLSX)
			r.Get("/{id}", d.Clients.Get)
			r.Put("/{id}", d.Clients.Update)
			r.Delete("/{id}", d.Clients.Delete)
		})

		r.Get("/analytics", d.Analytics.Snapshot)
	})

	return r
}
