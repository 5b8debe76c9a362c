package generation

import (
	"context"

	"github.com/phrazzld/studysnap/internal/domain"
)

// Generator defines the interface for generating a study set from text.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate creates flashcards and quiz questions from sourceText.
	// The returned set has already passed schema validation; on any failure
	// no partial content is returned (see errors.go for specific types).
	Generate(ctx context.Context, sourceText string) (*domain.StudySet, error)
}
