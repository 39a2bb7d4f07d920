package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kdriscoll/recipe-manager/internal/api"
	"github.com/kdriscoll/recipe-manager/internal/config"
	"github.com/kdriscoll/recipe-manager/internal/storage/sql"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create data directory if needed (for SQLite)
	if cfg.Database.Driver == "sqlite3" {
		if dir := filepath.Dir(cfg.Database.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatalf("Failed to create data directory: %v", err)
			}
		}
	}

	// Initialize storage, waiting for the database to come up.
	store, err := connectWithRetry(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Create router
	router := api.NewRouter(store)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Recipe Manager on http://%s", cfg.Server.Addr())
	log.Printf("Press Ctrl+C to stop")

	// Start server in goroutine
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// connectWithRetry keeps trying to open the database until it answers
// or the configured timeout expires. A postgres container starting up
// alongside the server commonly needs a few seconds.
func connectWithRetry(cfg *config.Config) (*sql.Store, error) {
	deadline := time.Now().Add(cfg.Database.ConnectTimeout)
	for {
		store, err := sql.New(cfg.Database.Driver, cfg.Database.DSN)
		if err == nil {
			return store, nil
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		log.Printf("Database unavailable, retrying in %s: %v", cfg.Database.ConnectRetry, err)
		time.Sleep(cfg.Database.ConnectRetry)
	}
}
