package csvimport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"transcript-control/internal/app/metrics"
)

const serviceName = "csv_import"

// Mode selects how the import service interprets the calendar export
type Mode string

const (
	ModeInternal Mode = "internal"
	ModeExternal Mode = "external"
)

// ParseMode maps an empty value to ModeInternal and rejects unknown modes
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeInternal, nil
	case ModeInternal, ModeExternal:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown import mode %q", s)
}

// Client forwards calendar CSV uploads to the external import service.
// The service is opaque: only success or failure is reported.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Registry
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Registry) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named(serviceName),
		metrics: m,
	}
}

// Import uploads one file as multipart field "file"
func (c *Client) Import(ctx context.Context, filename string, content io.Reader, mode Mode) error {
	started := time.Now()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	endpoint := c.baseURL + "/import-csv?mode=" + url.QueryEscape(string(mode))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create import request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamFailure(serviceName, "import", time.Since(started))
		return fmt.Errorf("csv import: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.RecordUpstreamFailure(serviceName, "import", time.Since(started))
		return fmt.Errorf("csv import: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	c.metrics.RecordUpstreamSuccess(serviceName, "import", time.Since(started))
	c.logger.Info("calendar csv imported", zap.String("filename", filename), zap.String("mode", string(mode)))
	return nil
}
