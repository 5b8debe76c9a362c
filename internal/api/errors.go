package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/studysnap/internal/api/shared"
	"github.com/phrazzld/studysnap/internal/generation"
)

// ErrTextTooShort is returned when the submitted source text is too short
// to generate from.
var ErrTextTooShort = errors.New("source text too short")

// User-facing messages. These are part of the HTTP contract: clients show
// them verbatim.
const (
	MsgTextTooShort      = "Please provide at least 50 characters of text for meaningful content generation."
	MsgNotConfigured     = "Gemini API key not configured. Please add GEMINI_API_KEY to your .env file."
	MsgParseFailure      = "Failed to parse AI response. Please try again."
	MsgInvalidAPIKey     = "Invalid Gemini API key. Please check your configuration."
	MsgQuotaExceeded     = "Gemini API quota exceeded. Please check your API usage."
	MsgGenerationFailed  = "An error occurred while generating content. Please try again."
	MsgInvalidRequest    = "Invalid request format"
	MsgRequestTooLarge   = "Request body too large"
	MsgUnexpectedFailure = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrTextTooShort):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, generation.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Upstream error text never reaches the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedFailure
	}

	switch {
	case errors.Is(err, ErrTextTooShort):
		return MsgTextTooShort
	case errors.Is(err, shared.ErrBodyTooLarge):
		return MsgRequestTooLarge
	case errors.Is(err, generation.ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, generation.ErrInvalidResponse):
		return MsgParseFailure
	case errors.Is(err, generation.ErrInvalidAPIKey):
		return MsgInvalidAPIKey
	case errors.Is(err, generation.ErrQuotaExceeded):
		return MsgQuotaExceeded
	default:
		return MsgGenerationFailed
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
