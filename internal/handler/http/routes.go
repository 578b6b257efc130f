package http

import (
	"github.com/MKhiriev/cyphers-laptop/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)
	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", metrics.Handler(h.gatherer))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
