package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/studysnap/internal/api/shared"
	"github.com/phrazzld/studysnap/internal/generation"
	"github.com/phrazzld/studysnap/internal/platform/logger"
)

// GenerateHandler serves POST /api/generate.
type GenerateHandler struct {
	generator    generation.Generator
	maxBodyBytes int64
}

// NewGenerateHandler creates a GenerateHandler. Request bodies above
// maxBodyBytes are rejected.
func NewGenerateHandler(generator generation.Generator, maxBodyBytes int64) *GenerateHandler {
	return &GenerateHandler{
		generator:    generator,
		maxBodyBytes: maxBodyBytes,
	}
}

// Generate turns the submitted text into a validated study set.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, h.maxBodyBytes, &req); err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("generating study set", "text_length", len(req.Text))

	set, err := h.generator.Generate(r.Context(), req.Text)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("study set generated",
		"flashcards", len(set.Flashcards),
		"quiz_questions", len(set.Quiz))

	shared.RespondWithJSON(w, r, http.StatusOK, set)
}
