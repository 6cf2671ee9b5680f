package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/auth"
	"droscher.com/BreweryDB/pkg/metrics"
)

// NewRouter mounts the brewery API. Write routes and login only exist when writes are enabled.
func NewRouter(breweries *BreweryServer, authManager *auth.Manager, conf *configs.Config, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, RequestLogger(logger), middleware.Recoverer, metrics.Middleware())

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/breweries", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(CacheControl)
			r.Get("/", breweries.ListBreweries)
			r.Get("/autocomplete", breweries.Autocomplete)
			r.Get("/search", breweries.SearchBreweries)
			r.Get("/{id}", breweries.GetBrewery)
		})

		if conf.Server.EnableWrites {
			r.Group(func(r chi.Router) {
				r.Use(authManager.Middleware)
				r.Post("/", breweries.CreateBrewery)
				r.Put("/{id}", breweries.UpdateBrewery)
				r.Delete("/{id}", breweries.DeleteBrewery)
			})
		}
	})

	if conf.Server.EnableWrites {
		router.Post("/auth/login", authManager.LoginHandler)
	}

	return router
}
