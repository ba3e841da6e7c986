package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holiday-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                               liveness + rule store check
//	GET /api/v1/countries                     supported country codes
//	GET /api/v1/holidays/{country}/{year}     expanded calendar for one year
//	GET /api/v1/holidays/check                is a given date a holiday
//	GET /api/v1/holidays/next                 first holiday after a date
//
// All /api/v1 routes accept an optional subdivision query parameter.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Auth is a no-op in development with no key configured
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/countries", handlers.ListCountries)
		r.Get("/holidays/check", handlers.CheckHoliday)
		r.Get("/holidays/next", handlers.NextHoliday)
		r.Get("/holidays/{country}/{year}", handlers.GetHolidays)
	})

	return r
}
