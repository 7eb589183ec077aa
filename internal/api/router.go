package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/plant-tracker/server/internal/api/handlers"
	mw "github.com/plant-tracker/server/internal/api/middleware"
)

type Dependencies struct {
	PlantsHandler *handlers.PlantsHandler
	HealthHandler *handlers.HealthHandler

	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	// Health endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/plants", func(pr chi.Router) {
			pr.Get("/", dep.PlantsHandler.List)
			pr.Post("/", dep.PlantsHandler.Create)
			pr.Get("/{id}", dep.PlantsHandler.Get)
			pr.Put("/{id}", dep.PlantsHandler.Update)
			pr.Delete("/{id}", dep.PlantsHandler.Delete)
		})
	})

	return r
}
