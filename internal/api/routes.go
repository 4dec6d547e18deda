package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                  - liveness check
//	GET /api/v1/offset/{offset}  - day offset to date and weekday
//	GET /api/v1/date/{date}      - YYYY-MM-DD date to day offset
//	GET /api/v1/today            - current UTC day
//	GET /api/v1/range            - inclusive date range (start, end params)
func SetupRoutes(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/offset/{offset}", handlers.GetOffsetDay)
		r.Get("/date/{date}", handlers.GetDateDay)
		r.Get("/today", handlers.GetToday)
		r.Get("/range", handlers.GetRange)
	})

	return r
}
