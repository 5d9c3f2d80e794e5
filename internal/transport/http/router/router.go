package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PhaniVeludurthi/catalog-service/internal/config"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/handlers"
	appmw "github.com/PhaniVeludurthi/catalog-service/internal/transport/http/middleware"
)

func New(
	events *handlers.EventsHandler,
	venues *handlers.VenuesHandler,
	health *handlers.HealthHandler,
	auth *appmw.AuthMiddleware,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.CorrelationID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)
	r.Use(appmw.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/venues", func(r chi.Router) {
			r.Get("/", venues.List)
			r.Get("/city/{city}", venues.ListByCity)
			r.Get("/{venue_id}", venues.Get)

			r.Group(func(r chi.Router) {
				if auth != nil {
					r.Use(auth.Require)
				}
				r.Post("/", venues.Create)
				r.Put("/{venue_id}", venues.Update)
				r.Delete("/{venue_id}", venues.Delete)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", events.List)
			r.Get("/search", events.Search)
			r.Get("/venue/{venue_id}", events.ListByVenue)
			r.Get("/status/{status}", events.ListByStatus)
			r.Get("/city/{city}", events.ListByCity)
			r.Get("/{event_id}", events.Get)

			r.Group(func(r chi.Router) {
				if auth != nil {
					r.Use(auth.Require)
				}
				r.Post("/", events.Create)
				r.Put("/{event_id}", events.Update)
				r.Delete("/{event_id}", events.Delete)
				r.Post("/{event_id}/cancel", events.Cancel)
			})
		})
	})

	return r
}
