package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"inkwell/internal/config"
	"inkwell/internal/observability"
	"inkwell/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		observability.Logger.Info("Loaded environment from .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		observability.Logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		observability.Logger.Error("Failed to initialize server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		observability.Logger.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			observability.Logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	observability.Logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := srv.App().Listen(":" + cfg.Port); err != nil {
		observability.Logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
