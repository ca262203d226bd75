package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full chi router for the service: API routes,
// health and metrics endpoints, the root redirect, and static assets
// served from webDir under /static/.
func NewRouter(h *ActivityHandler, webDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log
	r.Use(CORS)                    // permissive CORS for the demo front-end

	r.Get("/health", HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API routes
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Delete("/{name}/unregister", h.Unregister)
	})

	// Static front-end: root redirects into the static index page.
	r.Get("/", Root)
	webFS := http.Dir(webDir)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(webFS)))

	return r
}
