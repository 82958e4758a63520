package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transcript-control/internal/api/middleware"
	"transcript-control/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(zap.NewNop()))
	mockServices := testutil.NewMockServices(t)
	return router, mockServices
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}
