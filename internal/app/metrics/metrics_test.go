package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ObserveHTTP(t *testing.T) {
	r := New()
	r.ObserveHTTP("GET", "/api/transcriptions", 200, 12*time.Millisecond)
	r.ObserveHTTP("GET", "/api/transcriptions", 200, 8*time.Millisecond)
	r.ObserveHTTP("DELETE", "/api/transcriptions", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/api/transcriptions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("DELETE", "/api/transcriptions", "400")))
}

func TestRegistry_Upstream(t *testing.T) {
	r := New()
	r.RecordUpstreamSuccess("n8n", "health", time.Second)
	r.RecordUpstreamFailure("n8n", "start", time.Second)
	r.RecordUpstreamFailure("n8n", "start", time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("n8n", "health", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("n8n", "start", "failure")))
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.ObserveHTTP("GET", "/", 200, time.Millisecond)
		r.RecordUpstreamSuccess("n8n", "health", time.Millisecond)
		r.RecordUpstreamFailure("n8n", "health", time.Millisecond)
	})
}

func TestRegistry_Handler(t *testing.T) {
	r := New()
	r.RecordUpstreamSuccess("csv_import", "import", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "transcript_control_upstream_calls_total"))
}
