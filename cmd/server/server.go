package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const (
	shutdownTimeout  = 10 * time.Second
	migrationTimeout = 30 * time.Second
)

// run starts one HTTP server per tracker service and blocks until a
// shutdown signal arrives or a server fails, then shuts everything down
// gracefully and releases the pools.
func (app *application) run(ctx context.Context) error {
	serverCtx, cancelServers := context.WithCancel(ctx)
	defer cancelServers()

	servers := make([]*http.Server, 0, len(app.services))
	for _, svc := range app.services {
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", svc.port),
			Handler: svc.handler,
		}
		servers = append(servers, server)

		go func(name string, s *http.Server) {
			app.logger.Info("Starting server", "service", name, "addr", s.Addr)
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				app.logger.Error("Server failed", "service", name, "error", err)
				cancelServers()
			}
		}(svc.name, server)
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdownCh:
		app.logger.Info("Shutdown signal received", "signal", sig.String())
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var shutdownErr error
	for i, server := range servers {
		wg.Add(1)
		go func(name string, s *http.Server) {
			defer wg.Done()
			if err := s.Shutdown(shutdownCtx); err != nil {
				app.logger.Error("Server shutdown failed", "service", name, "error", err)
				mu.Lock()
				shutdownErr = err
				mu.Unlock()
			}
		}(app.services[i].name, server)
	}
	wg.Wait()

	app.cleanup()

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown failed: %w", shutdownErr)
	}
	app.logger.Info("Server shutdown completed")
	return nil
}
