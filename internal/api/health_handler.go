package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/studysnap/internal/api/shared"
)

// Health serves GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
