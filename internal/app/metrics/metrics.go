package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "transcript_control"

// Registry owns every collector the server exports. A nil *Registry is valid
// and records nothing, which keeps tests free of metric plumbing.
type Registry struct {
	reg             *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Calls to external services by outcome.",
		}, []string{"service", "operation", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "Latency of calls to external services.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"service", "operation"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.upstreamCalls,
		r.upstreamLatency,
	)
	return r
}

// ObserveHTTP records one served request. route is the gin route pattern,
// never the raw path, so ids do not explode cardinality.
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordUpstreamSuccess records a successful call to service
func (r *Registry) RecordUpstreamSuccess(service, operation string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamCalls.WithLabelValues(service, operation, "success").Inc()
	r.upstreamLatency.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

// RecordUpstreamFailure records a failed call to service
func (r *Registry) RecordUpstreamFailure(service, operation string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamCalls.WithLabelValues(service, operation, "failure").Inc()
	r.upstreamLatency.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

// Handler serves the exposition format
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the underlying registry for tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
