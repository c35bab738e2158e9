package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redshift-games/tyrian-world/internal/config"
	"github.com/redshift-games/tyrian-world/internal/handlers"
	"github.com/redshift-games/tyrian-world/internal/logger"
	"github.com/redshift-games/tyrian-world/internal/middleware"
	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/internal/services/queue"
	"github.com/redshift-games/tyrian-world/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Tyrian world API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"preset_dir", cfg.PresetDir)

	redisStorage, err := storage.NewRedisStorage(cfg.RedisURL, cfg.PresetDir, log)
	if err != nil {
		log.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	var sto services.Storage = redisStorage

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := redisStorage.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	// The archive is optional; an empty path disables it.
	var archive services.Archive
	if cfg.ArchivePath != "" {
		sqliteArchive, err := storage.OpenArchive(cfg.ArchivePath)
		if err != nil {
			log.Error("Failed to open archive", "error", err, "path", cfg.ArchivePath)
			os.Exit(1)
		}
		archive = sqliteArchive
		log.Info("Archive opened", "path", cfg.ArchivePath)
	}

	queueClient, err := queue.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create queue client", "error", err)
		os.Exit(1)
	}
	generationQueue := queue.NewGenerationQueue(queueClient)

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(log, sto, archive, generationQueue)
	mux.Handle("/health", healthHandler)

	worldHandler := handlers.NewWorldHandler(log, sto, archive, generationQueue)
	mux.Handle("/v1/worlds", worldHandler)
	mux.Handle("/v1/worlds/", worldHandler)

	presetHandler := handlers.NewPresetHandler(log, sto)
	mux.Handle("/v1/presets", presetHandler)
	mux.Handle("/v1/presets/", presetHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	// Close storage connections
	if err := sto.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}
	if archive != nil {
		if err := archive.Close(); err != nil {
			log.Error("Error closing archive", "error", err)
		}
	}
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing queue client", "error", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
