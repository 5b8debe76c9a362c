package generation

import (
	"fmt"

	"github.com/phrazzld/studysnap/internal/domain"
)

// ParseStudySet normalizes raw model output into a validated study set: code
// fences are stripped, the remainder is decoded as JSON and checked against
// the study set schema.
//
// Both decoding and schema failures are reported as ErrInvalidResponse; the
// underlying domain error stays reachable through errors.Is / errors.As.
func ParseStudySet(raw string) (*domain.StudySet, error) {
	body := StripCodeFences(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	set, err := domain.ValidateJSON([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return set, nil
}
