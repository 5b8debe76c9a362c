package study

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned when a controller operation is invoked
	// outside its legal state, e.g. answering a question twice.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrOptionOutOfRange is returned for an option index outside [0, 3].
	// It wraps ErrInvalidOperation.
	ErrOptionOutOfRange = fmt.Errorf("%w: option index out of range", ErrInvalidOperation)

	// ErrEmptyDeck is returned when a deck is reset with no cards.
	ErrEmptyDeck = errors.New("deck must contain at least one card")

	// ErrEmptyQuiz is returned when a quiz is reset with no questions.
	ErrEmptyQuiz = errors.New("quiz must contain at least one question")

	// ErrGenerationPending is returned by App.Begin while a request is in flight.
	ErrGenerationPending = errors.New("a generation request is already in flight")
)
