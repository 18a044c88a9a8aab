package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	apimiddleware "github.com/Oceanvibes209/LoneWolfFitness-Server/internal/api/middleware"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/config"
)

// newRouter builds the router for one tracker service: standard chi
// middleware, trace IDs, request logging, permissive CORS, then the
// per-request database connection middleware wrapping the resource
// routes. The health endpoint sits outside the connection middleware so
// probes never consume pool capacity.
func newRouter(
	db *sql.DB,
	dbCfg config.DatabaseConfig,
	logger *slog.Logger,
	pattern string,
	routes chi.Router,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Group(func(r chi.Router) {
		r.Use(apimiddleware.DBConn(
			db,
			apimiddleware.SessionInitializer(dbCfg.TimeZone),
			logger,
		))
		r.Mount(pattern, routes)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
