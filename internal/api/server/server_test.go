package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transcript-control/internal/api/v1/dto"
	v1routes "transcript-control/internal/api/v1/routes"
	"transcript-control/internal/app/metrics"
	"transcript-control/internal/app/testutil"
	"transcript-control/internal/app/workflow"
	"transcript-control/internal/config"
)

func newTestServer(t *testing.T) (*Server, *testutil.MockServices) {
	mocks := testutil.NewMockServices(t)
	container := &v1routes.ServiceContainer{
		TranscriptionService: mocks.TranscriptionService,
		CalendarService:      mocks.CalendarService,
		WorkflowService:      mocks.WorkflowService,
		HealthService:        mocks.HealthService,
		TableConfigService:   mocks.TableConfigService,
		SettingsService:      mocks.SettingsService,
	}
	cfg := config.Default().Server
	cfg.Host = "127.0.0.1"
	cfg.Port = "0"
	cfg.Environment = "test"
	return NewServer(cfg, container, metrics.New(), zap.NewNop()), mocks
}

func TestServer_RoutesMountedUnderAPI(t *testing.T) {
	srv, mocks := newTestServer(t)
	mocks.HealthService.On("Check", mock.Anything).Return(dto.HealthResponse{Database: true, N8N: true}, nil)
	mocks.WorkflowService.On("Status", mock.Anything).Return(workflow.StatusReport{Status: workflow.StatusStopped, Message: "0 active workflows"})

	for _, path := range []string{"/api/health", "/api/workflow/status", "/"} {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
	}

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RequestIDPropagated(t *testing.T) {
	srv, mocks := newTestServer(t)
	mocks.HealthService.On("Check", mock.Anything).Return(dto.HealthResponse{Database: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestServer_MetricsEndpoint(t *testing.T) {
	srv, mocks := newTestServer(t)
	mocks.HealthService.On("Check", mock.Anything).Return(dto.HealthResponse{Database: true}, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `route="/api/health"`), rec.Body.String())
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv, _ := newTestServer(t)

	errCh, err := srv.Start()
	require.NoError(t, err)
	assert.NotEqual(t, "127.0.0.1:0", srv.Addr())

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, open := <-errCh
	assert.False(t, open)
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	first, _ := newTestServer(t)
	_, err := first.Start()
	require.NoError(t, err)
	defer first.Shutdown(context.Background())

	second, _ := newTestServer(t)
	second.httpServer.Addr = first.Addr()
	_, err = second.Start()
	assert.Error(t, err)
}
