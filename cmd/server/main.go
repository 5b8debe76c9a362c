// Package main implements the StudySnap API server, which turns source text
// into flashcards and quiz questions through a configured LLM provider.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/studysnap/internal/config"
	"github.com/phrazzld/studysnap/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("studysnap server: %v", err)
	}
}

// run loads configuration, wires dependencies and serves until shutdown.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("provider", cfg.LLM.Provider),
		slog.Bool("api_key_present", cfg.LLM.APIKey() != ""))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
