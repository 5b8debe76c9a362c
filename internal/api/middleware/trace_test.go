package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studysnap/internal/api/shared"
	"github.com/phrazzld/studysnap/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	base, buf := logger.NewTestLogger(t)

	var seenTrace string
	handler := chimw.RequestID(NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTrace = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, seenTrace, 32)

	entry := logger.FindEntry(t, buf, "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, seenTrace, entry["trace_id"])
	assert.NotEmpty(t, entry["request_id"])

	started := logger.FindEntry(t, buf, "request started")
	require.NotNil(t, started)
	assert.Equal(t, "/api/health", started["path"])
}
