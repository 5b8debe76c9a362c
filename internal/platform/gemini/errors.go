package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/studysnap/internal/generation"
	"google.golang.org/genai"
)

// Markers the Gemini API uses for credential and quota failures. Invalid
// keys come back as 400 INVALID_ARGUMENT, so the status code alone is not
// enough. Quota markers are only trusted on a structured APIError.
var (
	invalidKeyMarkers = []string{"API_KEY_INVALID", "API key not valid", "PERMISSION_DENIED"}
	quotaMarkers      = []string{"QUOTA_EXCEEDED", "RESOURCE_EXHAUSTED"}
)

// classifyError maps a GenerateContent failure onto the generation error
// taxonomy. The upstream error is kept in the chain for logging.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %w", generation.ErrInvalidAPIKey, err)
		case apiErr.Code == http.StatusTooManyRequests,
			containsAny(apiErr.Status, quotaMarkers),
			containsAny(apiErr.Message, quotaMarkers):
			return fmt.Errorf("%w: %w", generation.ErrQuotaExceeded, err)
		}
	}

	if containsAny(err.Error(), invalidKeyMarkers) {
		return fmt.Errorf("%w: %w", generation.ErrInvalidAPIKey, err)
	}
	return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
