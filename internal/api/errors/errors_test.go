package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *APIError
		want int
	}{
		{NewValidationError("bad", nil), http.StatusBadRequest},
		{NewBadRequestError("bad"), http.StatusBadRequest},
		{NewNotFoundError("Transcription"), http.StatusNotFound},
		{NewConflictError("dup"), http.StatusConflict},
		{NewServiceUnavailableError("down"), http.StatusServiceUnavailable},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{&APIError{Kind: "unknown"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAPIError_JSON(t *testing.T) {
	err := NewValidationError("Validation failed", map[string]string{"ids": "is required"})
	err.RequestID = "req-1"

	b, jerr := json.Marshal(err)
	require.NoError(t, jerr)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, "validation", body["kind"])
	assert.Equal(t, "req-1", body["request_id"])
	assert.Equal(t, map[string]interface{}{"ids": "is required"}, body["details"])
}

func TestNewNotFoundError(t *testing.T) {
	assert.Equal(t, "Transcription not found", NewNotFoundError("Transcription").Error())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, KindInternal, "x"))

	orig := NewValidationError("v", map[string]string{"f": "bad"})
	wrapped := WrapError(orig, KindBadRequest, "outer")
	assert.Equal(t, KindBadRequest, wrapped.Kind)
	assert.Equal(t, "bad", wrapped.Details["f"])

	plain := WrapError(stderrors.New("io"), KindInternal, "Failed")
	assert.Nil(t, plain.Details)
	assert.Equal(t, "Failed", plain.Message)
}
