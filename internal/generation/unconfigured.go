package generation

import (
	"context"
	"fmt"

	"github.com/phrazzld/studysnap/internal/domain"
)

// Unconfigured stands in for a provider whose credential is missing. The
// server still starts; every request fails with ErrNotConfigured.
type Unconfigured struct {
	Provider string
}

// Generate always fails with ErrNotConfigured.
func (u Unconfigured) Generate(ctx context.Context, sourceText string) (*domain.StudySet, error) {
	return nil, fmt.Errorf("%w: no API key for provider %q", ErrNotConfigured, u.Provider)
}
