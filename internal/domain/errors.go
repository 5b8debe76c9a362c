// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a study set fails schema validation.
	// It is usually wrapped by a *ValidationError carrying the reason.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedJSON is returned when input cannot be decoded as JSON at all.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
