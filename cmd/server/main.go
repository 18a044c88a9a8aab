// Package main implements the entry point for the LoneWolfFitness
// server, which exposes the workout, user workout and food tracker
// REST services over a shared PostgreSQL database.
package main

import (
	"context"
	"log"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/config"
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}
