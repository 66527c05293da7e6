package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Harrowfield-Ag/Advisor/internal/events"
	"github.com/Harrowfield-Ag/Advisor/internal/scoring"
	"github.com/Harrowfield-Ag/Advisor/internal/store"
)

func NewRouter(s store.Store, ev events.Client, engine *scoring.Engine, rateLimitRPM int, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(rateLimitRPM))

	compare := NewCompareHandler(s, ev, engine, logger)
	comparisons := NewComparisonsHandler(s)
	methods := NewMethodsHandler()
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ClientIDMiddleware)

		r.Post("/comparisons", compare.Create)
		r.Get("/comparisons", comparisons.List)
		r.Get("/comparisons/{id}", comparisons.Get)

		r.Get("/scoring/explain/{id}", comparisons.Explain)

		r.Get("/methods", methods.List)
		r.Get("/methods/frontier", methods.Frontier)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
