package main

import (
	"log/slog"
	"os"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/logging"
	"github.com/dolinaroz/landing/internal/server"
)

func main() {
	cfg := config.New()
	slog.SetDefault(logging.New(cfg.LogFormat, cfg.LogLevel))

	// Create a new server instance with every module booted.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
