package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/api"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/config"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/platform/postgres"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

// service is one independently listening tracker service: its own port,
// its own connection pool, its own router. The three services are
// structurally identical and differ only by resource descriptor.
type service struct {
	name    string
	port    int
	db      *sql.DB
	handler http.Handler
}

// application holds the fully wired set of tracker services.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	services []*service
}

// newApplication wires the three tracker services and runs schema
// migrations. Pools are constructed here and injected downward; nothing
// holds package-global database state.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	fitness, err := newService(cfg, logger, "fitness_tracker", cfg.Server.FitnessPort, store.WorkoutResource)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	app.services = append(app.services, fitness)

	user, err := newService(cfg, logger, "user_data", cfg.Server.UserPort, store.UserWorkoutResource)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	app.services = append(app.services, user)

	food, err := newService(cfg, logger, "food_tracker", cfg.Server.FoodPort, store.FoodEntryResource)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	app.services = append(app.services, food)

	// All services share one schema; migrate through the first pool.
	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()
	if err := postgres.RunMigrations(ctx, fitness.db); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Schema migrations applied")

	return app, nil
}

// newService builds one tracker service for the given resource
// descriptor: pool, store, handler, router.
func newService[T any](
	cfg *config.Config,
	logger *slog.Logger,
	name string,
	port int,
	desc store.Descriptor[T],
) (*service, error) {
	db, err := setupDatabase(cfg.Database, logger.With(slog.String("service", name)))
	if err != nil {
		return nil, fmt.Errorf("failed to set up %s database: %w", name, err)
	}

	trackerStore := postgres.NewTrackerStore(db, desc, logger)
	handler := api.NewResourceHandler(trackerStore, desc, logger)
	router := newRouter(db, cfg.Database, logger, "/"+desc.Table, handler.Routes())

	return &service{
		name:    name,
		port:    port,
		db:      db,
		handler: router,
	}, nil
}

// cleanup releases application resources: every service's pool.
func (app *application) cleanup() {
	for _, svc := range app.services {
		if svc.db != nil {
			if err := svc.db.Close(); err != nil {
				app.logger.Error("Failed to close database pool",
					"service", svc.name, "error", err)
			}
		}
	}
}
