package main

import (
	"alcyxob/football-training/internal/api"
	"alcyxob/football-training/internal/app"
	"alcyxob/football-training/internal/config"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title Football Training API
// @version 1.0
// @description Read-mostly catalog of a youth football training program: mesocycles, weekly sessions and exercises.
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("Starting Football Training Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (driver=%s).", cfg.Database.Driver)

	// --- Store, Storage and Services ---
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer application.Close()

	// --- Seed on Startup ---
	if cfg.Server.SeedOnStartup {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if _, err := application.CatalogService.Seed(seedCtx); err != nil {
			// The API still serves whatever the store holds.
			log.Printf("ERROR: Startup seed failed: %v", err)
		}
		cancel()
	}

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	router := api.NewRouter(cfg.Server, cfg.Metrics, application.CatalogService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
