// Package api exposes the provisioning engine over HTTP. Handlers decode
// JSON requests, delegate to the engine and wrap every response in a
// {success, ..., error} envelope.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/engine"
)

// Handler serves the REST API.
type Handler struct {
	engine  *engine.Engine
	audit   *audit.Logger
	metrics *Metrics
}

// NewHandler creates the API handler over an engine and its audit trail.
func NewHandler(eng *engine.Engine, auditLog *audit.Logger, metrics *Metrics) *Handler {
	return &Handler{engine: eng, audit: auditLog, metrics: metrics}
}

// Router builds the chi router with all routes and middleware attached.
// The prometheus registry backs the /metrics endpoint.
func (h *Handler) Router(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(h.countRequests)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/cloud", func(r chi.Router) {
		r.Route("/infrastructure", func(r chi.Router) {
			r.Post("/", h.CreateInfrastructure)
			r.Get("/", h.ListInfrastructures)
			r.Get("/{id}", h.GetInfrastructure)
			r.Delete("/{id}", h.DeleteInfrastructure)
		})
		r.Route("/providers", func(r chi.Router) {
			r.Get("/", h.ListProviders)
			r.Get("/{provider}", h.GetProvider)
		})
	})

	r.Route("/vm", func(r chi.Router) {
		r.Post("/", h.CreateVM)
		r.Get("/", h.ListVMs)
		r.Get("/{id}", h.GetVM)
		r.Put("/{id}", h.UpdateVM)
		r.Delete("/{id}", h.DeleteVM)
		r.Post("/{id}/action", h.VMAction)
	})

	r.Route("/api/logs", func(r chi.Router) {
		r.Get("/", h.SearchLogs)
		r.Get("/recent", h.RecentLogs)
	})

	return r
}

func (h *Handler) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		if h.metrics == nil {
			return
		}
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		h.metrics.HTTPRequests.WithLabelValues(r.Method, pattern).Inc()
	})
}

// Health reports liveness and the current record counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"infrastructures": len(h.engine.ListInfrastructures()),
		"vms":             len(h.engine.ListVMs()),
	})
}
