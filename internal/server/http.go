package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/internal/config"
	"github.com/triviabank/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia endpoints plus health and metrics routes.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, handlers *trivia.Handlers) *http.Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Metrics())
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := pool.Ping(req.Context()); err != nil {
			logger.Error().Err(err).Msg("database ping failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	handlers.Mount(r)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
}
