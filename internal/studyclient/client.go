package studyclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/phrazzld/studysnap/internal/domain"
	"github.com/phrazzld/studysnap/internal/generation"
)

// GeneratePath is the server route for study set generation.
const GeneratePath = "/api/generate"

type generateRequest struct {
	Text string `json:"text"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Client performs generation requests against a StudySnap server. Each call
// makes at most one HTTP request; nothing is retried.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates a Client for the server at baseURL. A zero timeout leaves
// requests bounded only by their context.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Generate requests a study set for sourceText.
//
// Text shorter than domain.MinSourceChars after trimming fails with
// KindTooShort without touching the network. Every other failure is
// reported as a *GenerationError as well; a successful result has passed
// schema validation in full.
func (c *Client) Generate(ctx context.Context, sourceText string) (*domain.StudySet, error) {
	text := strings.TrimSpace(sourceText)
	if !domain.HasEnoughSource(text) {
		return nil, &GenerationError{Kind: KindTooShort, Message: MsgTooShort}
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(generateRequest{Text: text}).
		Post(GeneratePath)
	if err != nil {
		c.logger.WarnContext(ctx, "generation request failed", "error", err)
		return nil, &GenerationError{Kind: KindUnreachable, Message: MsgUnreachable, Err: err}
	}

	c.logger.DebugContext(ctx, "generation response received",
		"status_code", resp.StatusCode(),
		"body_bytes", len(resp.Body()),
		"duration_ms", time.Since(start).Milliseconds())

	if !resp.IsSuccess() {
		return nil, rejected(resp.StatusCode(), resp.Body())
	}

	set, err := generation.ParseStudySet(string(resp.Body()))
	if err != nil {
		c.logger.WarnContext(ctx, "generation response failed validation", "error", err)
		return nil, malformed(err)
	}
	return set, nil
}

func rejected(status int, body []byte) *GenerationError {
	var payload errorBody
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = strings.TrimSpace(payload.Error)
	}
	if message == "" {
		message = MsgRejectedFallback
	}
	return &GenerationError{
		Kind:    KindRejected,
		Message: message,
		Err:     fmt.Errorf("server responded %d %s", status, http.StatusText(status)),
	}
}

func malformed(err error) *GenerationError {
	message := MsgMalformedResponse
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		message = fmt.Sprintf("%s: %s", MsgMalformedResponse, vErr.Error())
	}
	return &GenerationError{Kind: KindMalformedResponse, Message: message, Err: err}
}
