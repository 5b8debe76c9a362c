package api

import (
	"fmt"
	"time"

	"github.com/phrazzld/studysnap/internal/domain"
)

// GenerateRequest defines the payload for POST /api/generate.
type GenerateRequest struct {
	Text string `json:"text"`
}

// Validate rejects missing text and text shorter than domain.MinSourceChars
// once trimmed.
func (r GenerateRequest) Validate() error {
	if !domain.HasEnoughSource(r.Text) {
		return fmt.Errorf("%w: got %d characters", ErrTextTooShort, domain.SourceLength(r.Text))
	}
	return nil
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
