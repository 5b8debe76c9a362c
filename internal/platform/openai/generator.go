package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/phrazzld/studysnap/internal/config"
	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/generation"
	"github.com/phrazzld/studysnap/internal/redact"
)

const systemPrompt = "You generate study material and reply with a single JSON object only."

// Generator calls the chat completions API once per request.
type Generator struct {
	logger  *slog.Logger
	client  *gopenai.Client
	prompt  *generation.Prompt
	model   string
	timeout time.Duration
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator builds a Generator from cfg. A missing API key yields
// generation.ErrNotConfigured.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key is empty", generation.ErrNotConfigured)
	}
	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompt, err := generation.LoadPrompt(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	clientCfg := gopenai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Generator{
		logger:  logger.With("provider", "openai", "model", cfg.OpenAIModel),
		client:  gopenai.NewClientWithConfig(clientCfg),
		prompt:  prompt,
		model:   cfg.OpenAIModel,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Generate requests a study set for sourceText in JSON mode and validates it.
func (g *Generator) Generate(ctx context.Context, sourceText string) (*domain.StudySet, error) {
	promptText, err := g.prompt.Render(sourceText)
	if err != nil {
		return nil, err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: promptText},
		},
		ResponseFormat: &gopenai.ChatCompletionResponseFormat{
			Type: gopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "chat completion failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse)
	}
	choice := resp.Choices[0]
	if choice.FinishReason == gopenai.FinishReasonContentFilter {
		return nil, fmt.Errorf("%w: completion filtered", generation.ErrContentBlocked)
	}

	set, err := generation.ParseStudySet(choice.Message.Content)
	if err != nil {
		g.logger.WarnContext(ctx, "chat completion failed validation",
			"error", err,
			"response_length", len(choice.Message.Content))
		return nil, err
	}

	g.logger.InfoContext(ctx, "chat completion successful",
		"flashcards", len(set.Flashcards),
		"quiz_questions", len(set.Quiz),
		"duration_ms", time.Since(start).Milliseconds())
	return set, nil
}

// classifyError maps client errors onto the generation error taxonomy.
func classifyError(err error) error {
	status := 0

	var apiErr *gopenai.APIError
	var reqErr *gopenai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return fmt.Errorf("%w: %w", generation.ErrQuotaExceeded, err)
		}
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", generation.ErrInvalidAPIKey, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", generation.ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}
}
