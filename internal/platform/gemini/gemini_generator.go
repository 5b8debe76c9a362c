package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/studysnap/internal/config"
	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/generation"
	"github.com/phrazzld/studysnap/internal/redact"
	"google.golang.org/genai"
)

// defaultTemperature matches the sampling the prompt was tuned with.
const defaultTemperature float32 = 0.7

// contentGenerator is the subset of *genai.Models the generator uses.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to generate study sets from source text.
type GeminiGenerator struct {
	logger  *slog.Logger
	prompt  *generation.Prompt
	models  contentGenerator
	model   string
	timeout time.Duration
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails.
//     A missing API key yields generation.ErrNotConfigured.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is empty", generation.ErrNotConfigured)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompt, err := generation.LoadPrompt(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return newGenerator(logger, prompt, client.Models, cfg.ModelName, timeout), nil
}

func newGenerator(
	logger *slog.Logger,
	prompt *generation.Prompt,
	models contentGenerator,
	model string,
	timeout time.Duration,
) *GeminiGenerator {
	return &GeminiGenerator{
		logger:  logger.With("provider", "gemini", "model", model),
		prompt:  prompt,
		models:  models,
		model:   model,
		timeout: timeout,
	}
}

// Generate makes a single Gemini call for sourceText and returns the
// validated study set. It never retries.
func (g *GeminiGenerator) Generate(ctx context.Context, sourceText string) (*domain.StudySet, error) {
	promptText, err := g.prompt.Render(sourceText)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "Prompt generated successfully",
		"template_name", g.prompt.Name(),
		"source_length", len(sourceText),
		"prompt_length", len(promptText))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(promptText), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(defaultTemperature),
	})
	if err != nil {
		classified := classifyError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, classified
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini returned no usable content", "error", err)
		return nil, err
	}

	set, err := generation.ParseStudySet(text)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response failed validation",
			"error", err,
			"response_length", len(text))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"flashcards", len(set.Flashcards),
		"quiz_questions", len(set.Quiz),
		"duration_ms", time.Since(start).Milliseconds())
	return set, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" &&
		resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
