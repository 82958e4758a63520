package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/workflow"
)

const dateLayout = "2006-01-02"

// Error is a non-2xx answer from the API, decoded from the failure envelope
type Error struct {
	StatusCode int               `json:"-"`
	Kind       string            `json:"kind"`
	Message    string            `json:"error"`
	Details    map[string]string `json:"details,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client is a typed client for the dashboard REST API
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a client for the API rooted at baseURL (for example http://localhost:3001)
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := c.BaseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send executes req and decodes the body into out. A non-2xx status is
// returned as *Error.
func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// call sends a JSON request and unwraps the data field of the envelope into out
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) (string, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return "", err
	}

	var env envelope
	if err := c.send(req, &env); err != nil {
		return "", err
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return env.Message, nil
}

// ListTranscriptions fetches one page. Zero page and limit use the server defaults.
func (c *Client) ListTranscriptions(ctx context.Context, q dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Status != "" {
		query.Set("status", q.Status)
	}
	if q.Language != "" {
		query.Set("language", q.Language)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/transcriptions", query, nil)
	if err != nil {
		return nil, err
	}
	var page dto.PaginatedTranscriptionsResponse
	if err := c.send(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetTranscription(ctx context.Context, id int64) (*model.Transcription, error) {
	var t model.Transcription
	if _, err := c.call(ctx, http.MethodGet, fmt.Sprintf("/transcriptions/%d", id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTranscriptions returns the number of rows the server actually removed
func (c *Client) DeleteTranscriptions(ctx context.Context, ids []int64) (int64, error) {
	var resp dto.BulkDeleteResponse
	if _, err := c.call(ctx, http.MethodDelete, "/transcriptions", nil, dto.BulkDeleteRequest{IDs: ids}, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

func (c *Client) UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error) {
	var t model.Transcription
	path := fmt.Sprintf("/transcriptions/%d/language", id)
	if _, err := c.call(ctx, http.MethodPatch, path, nil, dto.UpdateLanguageRequest{Language: language}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LinkCalendar copies entry's subject, start and attendees onto the transcription
func (c *Client) LinkCalendar(ctx context.Context, id int64, entry model.CalendarEntry) (*model.Transcription, error) {
	req := dto.LinkCalendarRequest{
		Subject:   entry.Subject,
		StartDate: entry.StartDate,
		EndDate:   entry.EndDate,
		Location:  entry.Location,
		Attendees: entry.Attendees,
	}
	var t model.Transcription
	path := fmt.Sprintf("/transcriptions/%d/link-calendar", id)
	if _, err := c.call(ctx, http.MethodPost, path, nil, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CalendarEntries returns calendar_entries meetings starting on day
func (c *Client) CalendarEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	entries := []model.CalendarEntry{}
	query := url.Values{"start_date": {day.Format(dateLayout)}}
	if _, err := c.call(ctx, http.MethodGet, "/calendar", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CalendarDay returns the imported export's meetings on day
func (c *Client) CalendarDay(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	entries := []model.CalendarEntry{}
	query := url.Values{"date": {day.Format(dateLayout)}}
	if _, err := c.call(ctx, http.MethodGet, "/calendar/day", query, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ImportCalendar uploads a CSV export as multipart field "file"
func (c *Client) ImportCalendar(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to copy upload: %w", err)
	}
	if mode != "" {
		if err := w.WriteField("mode", string(mode)); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/calendar/import", &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, nil)
}

func (c *Client) StartWorkflow(ctx context.Context) (string, error) {
	return c.call(ctx, http.MethodPost, "/workflow/start", nil, nil, nil)
}

func (c *Client) WorkflowStatus(ctx context.Context) (workflow.StatusReport, error) {
	var report workflow.StatusReport
	_, err := c.call(ctx, http.MethodGet, "/workflow/status", nil, nil, &report)
	return report, err
}

// Health returns the reachability flags. A failed database check is
// reported as *Error with both flags false.
func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	var status dto.HealthResponse
	_, err := c.call(ctx, http.MethodGet, "/health", nil, nil, &status)
	return status, err
}

func (c *Client) TableConfig(ctx context.Context, table string) ([]model.ColumnConfig, error) {
	cols := []model.ColumnConfig{}
	if _, err := c.call(ctx, http.MethodGet, "/table-config/"+url.PathEscape(table), nil, nil, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// SaveTableConfig stores the full layout and returns what the server persisted
func (c *Client) SaveTableConfig(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error) {
	req := dto.PutTableConfigRequest{Columns: make([]dto.ColumnConfigInput, 0, len(columns))}
	for _, col := range columns {
		visible := col.IsVisible
		req.Columns = append(req.Columns, dto.ColumnConfigInput{
			ColumnName:  col.ColumnName,
			ColumnWidth: col.ColumnWidth,
			ColumnOrder: col.ColumnOrder,
			IsVisible:   &visible,
		})
	}

	saved := []model.ColumnConfig{}
	if _, err := c.call(ctx, http.MethodPut, "/table-config/"+url.PathEscape(table), nil, req, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *Client) Settings(ctx context.Context) ([]model.Setting, error) {
	settings := []model.Setting{}
	if _, err := c.call(ctx, http.MethodGet, "/transcription-settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Setting returns one parameter; Value is nil when it was never set
func (c *Client) Setting(ctx context.Context, parameter string) (model.Setting, error) {
	var s model.Setting
	_, err := c.call(ctx, http.MethodGet, "/transcription-settings/"+url.PathEscape(parameter), nil, nil, &s)
	return s, err
}

func (c *Client) PutSetting(ctx context.Context, parameter, value string) (model.Setting, error) {
	var s model.Setting
	body := dto.NewPutSettingRequest(&value)
	_, err := c.call(ctx, http.MethodPut, "/transcription-settings/"+url.PathEscape(parameter), nil, body, &s)
	return s, err
}

// ClearSetting stores NULL for parameter
func (c *Client) ClearSetting(ctx context.Context, parameter string) (model.Setting, error) {
	var s model.Setting
	body := dto.NewPutSettingRequest(nil)
	_, err := c.call(ctx, http.MethodPut, "/transcription-settings/"+url.PathEscape(parameter), nil, body, &s)
	return s, err
}
