package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"backoffice/internal/container"
	"backoffice/internal/middleware"
)

// NewRouter configures the back-office routes and middleware
func NewRouter(container *container.Container) (*chi.Mux, error) {
	cfg := container.GetConfig()
	log := container.GetLogger()

	h, err := New(container)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Health check (no session)
	r.Get("/health", h.Health.Check)

	// JSON read API
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.AllowedOrigins
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(corsConfig, log))
		r.Get("/providers", h.API.Providers)
		r.Get("/activities", h.API.Activities)
	})

	// HTML back-office
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(middleware.SessionConfig{
			Secret: container.SessionSecret,
			TTL:    cfg.SessionTTL,
			Secure: cfg.IsProduction(),
		}, log))

		r.Get("/", h.Dashboard.Show)
		r.Post("/back", h.Navigation.Back)

		r.Route("/providers", func(r chi.Router) {
			r.Get("/", h.Provider.List)
			r.Post("/", h.Provider.Create)
			r.Post("/filters", h.Provider.ApplyFilters)
			r.Post("/filters/reset", h.Provider.ResetFilters)
			r.Get("/new", h.Provider.New)
			r.Post("/new/cancel", h.Provider.Cancel)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", h.Activity.List)
			r.Post("/filters", h.Activity.ApplyFilters)
			r.Post("/filters/reset", h.Activity.ResetFilters)
			r.Get("/new", h.Activity.New)
			r.Post("/new", h.Activity.Wizard)
			r.Get("/{key}", h.Activity.Detail)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"not_found","message":"Endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r, nil
}
