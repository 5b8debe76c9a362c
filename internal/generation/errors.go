package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate study content from text")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidAPIKey is returned when the provider rejects the configured credential
	ErrInvalidAPIKey = errors.New("language model rejected the API key")

	// ErrQuotaExceeded is returned when the provider reports exhausted quota or rate limits
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrNotConfigured is returned when no credential is configured for the provider
	ErrNotConfigured = errors.New("language model credential not configured")

	// ErrEmptySourceText is returned when there is no text to generate from
	ErrEmptySourceText = errors.New("source text cannot be empty")
)
