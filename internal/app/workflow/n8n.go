package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"transcript-control/internal/app/metrics"
)

const (
	healthPath    = "/"
	startPath     = "/webhook/start-transcription"
	workflowsPath = "/api/v1/workflows"
	apiKeyHeader  = "X-N8N-API-KEY"
	serviceName   = "n8n"
)

// Status is the coarse state of the remote workflows
type Status string

const (
	StatusActive  Status = "active"
	StatusStopped Status = "stopped"
	StatusError   Status = "error"
)

// StatusReport is what the dashboard shows next to the start button
type StatusReport struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Config addresses one n8n instance
type Config struct {
	BaseURL       string
	APIKey        string
	HealthTimeout time.Duration
	StartTimeout  time.Duration
}

// UpstreamError is returned when n8n answers with a non-2xx status
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("n8n %s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
}

type remoteWorkflow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type workflowList struct {
	Data []remoteWorkflow `json:"data"`
}

// N8NClient talks to the n8n workflow engine. Every call carries its own
// timeout; engine unavailability is expected and never fatal.
type N8NClient struct {
	config  Config
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Registry
}

// NewN8NClient creates a client with defaults for unset timeouts
func NewN8NClient(config Config, logger *zap.Logger, m *metrics.Registry) *N8NClient {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.HealthTimeout == 0 {
		config.HealthTimeout = 5 * time.Second
	}
	if config.StartTimeout == 0 {
		config.StartTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &N8NClient{
		config:  config,
		client:  &http.Client{},
		logger:  logger.Named(serviceName),
		metrics: m,
	}
}

// Healthy reports whether n8n answers its root URL with a 2xx in time
func (c *N8NClient) Healthy(ctx context.Context) bool {
	resp, err := c.do(ctx, "health", http.MethodGet, healthPath, nil, c.config.HealthTimeout)
	if err != nil {
		c.logger.Warn("n8n health check failed", zap.Error(err))
		return false
	}
	resp.Body.Close()
	return true
}

// Start fires the start-transcription webhook
func (c *N8NClient) Start(ctx context.Context) error {
	resp, err := c.do(ctx, "start", http.MethodPost, startPath, []byte("{}"), c.config.StartTimeout)
	if err != nil {
		c.logger.Error("failed to start workflow", zap.Error(err))
		return err
	}
	resp.Body.Close()
	c.logger.Info("workflow started")
	return nil
}

// Status derives active/stopped from the workflow list. Failures are
// reported as StatusError rather than returned.
func (c *N8NClient) Status(ctx context.Context) StatusReport {
	resp, err := c.do(ctx, "status", http.MethodGet, workflowsPath, nil, c.config.HealthTimeout)
	if err != nil {
		c.logger.Error("failed to fetch workflow status", zap.Error(err))
		return StatusReport{Status: StatusError, Message: "Failed to fetch workflow status"}
	}
	defer resp.Body.Close()

	var list workflowList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.logger.Error("failed to decode workflow list", zap.Error(err))
		return StatusReport{Status: StatusError, Message: "Failed to fetch workflow status"}
	}

	active := lo.CountBy(list.Data, func(w remoteWorkflow) bool { return w.Active })

	status := StatusStopped
	if active > 0 {
		status = StatusActive
	}
	return StatusReport{Status: status, Message: fmt.Sprintf("%d active workflows", active)}
}

// do sends one request and returns the response only for 2xx statuses
func (c *N8NClient) do(ctx context.Context, op, method, path string, body []byte, timeout time.Duration) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	started := time.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create n8n request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if path == workflowsPath {
		req.Header.Set(apiKeyHeader, c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		cancel()
		c.metrics.RecordUpstreamFailure(serviceName, op, time.Since(started))
		return nil, fmt.Errorf("n8n %s: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		cancel()
		c.metrics.RecordUpstreamFailure(serviceName, op, time.Since(started))
		return nil, &UpstreamError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	c.metrics.RecordUpstreamSuccess(serviceName, op, time.Since(started))
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the per-call timeout once the body is consumed
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
