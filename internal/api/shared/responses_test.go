package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	RespondWithData(rr, req, http.StatusOK, map[string]string{"name": "Books"}, "Category retrieved successfully")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Category retrieved successfully", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		RespondWithError(rr, req, http.StatusNotFound, "Category not found")

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.Equal(t, "Category not found", raw["message"])
		assert.NotContains(t, raw, "data")
		assert.NotContains(t, raw, "token")
		assert.NotContains(t, raw, "pagination")
	})

	t.Run("carries trace id from context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("GET", "/", nil)
		ctx := SetTraceID(req.Context())
		traceID := GetTraceID(ctx)
		require.NotEmpty(t, traceID)
		req = req.WithContext(ctx)
		rr := httptest.NewRecorder()

		RespondWithError(rr, req, http.StatusInternalServerError, "Something failed")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.Equal(t, traceID, raw["trace_id"])
	})
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = SetTraceID(ctx)
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// Two contexts never share a trace ID.
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}
