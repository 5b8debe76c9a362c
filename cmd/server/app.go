package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studysnap/internal/config"
	"github.com/phrazzld/studysnap/internal/generation"
	"github.com/phrazzld/studysnap/internal/platform/gemini"
	"github.com/phrazzld/studysnap/internal/platform/openai"
)

// application holds the shared dependencies of the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates the application with the generator for the
// configured provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gen, err := newGenerator(ctx, cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	return &application{config: cfg, logger: logger, generator: gen}, nil
}

// newGenerator selects the provider. Without a credential the server still
// starts, and generation requests fail with a configuration error.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	if cfg.APIKey() == "" {
		logger.Warn("LLM API key not configured; generation requests will fail",
			slog.String("provider", cfg.Provider))
		return generation.Unconfigured{Provider: cfg.Provider}, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		gen, err := openai.NewGenerator(logger, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("OpenAI generator initialized", slog.String("model", cfg.OpenAIModel))
		return gen, nil
	default:
		gen, err := gemini.NewGeminiGenerator(ctx, logger, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Gemini generator initialized", slog.String("model", cfg.ModelName))
		return gen, nil
	}
}

// Run serves HTTP until ctx is canceled or the process is signaled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
