package api

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

	apierrors "transcript-control/internal/api/errors"
	"transcript-control/internal/api/server"
	"transcript-control/internal/api/v1/dto"
	v1routes "transcript-control/internal/api/v1/routes"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/testutil"
	"transcript-control/internal/app/workflow"
	"transcript-control/internal/config"
)

// newTestAPI serves the real router backed by mock services
func newTestAPI(t *testing.T) (*Client, *testutil.MockServices) {
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
	cfg.Environment = "test"
	srv := server.NewServer(cfg, container, nil, zap.NewNop())

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	t.Cleanup(func() { mocks.AssertExpectations(t) })
	return NewClient(ts.URL+"/", 5*time.Second), mocks
}

func TestClient_ListTranscriptions(t *testing.T) {
	client, mocks := newTestAPI(t)
	query := dto.ListTranscriptionsQuery{Page: 2, Limit: 1, Search: "sync", Status: "finished", Language: "de"}
	mocks.TranscriptionService.On("ListTranscriptions", mock.Anything, query).Return(&dto.PaginatedTranscriptionsResponse{
		Data:       testutil.TestTranscriptions[:1],
		Total:      3,
		Page:       2,
		Limit:      1,
		TotalPages: 3,
	}, nil)

	page, err := client.ListTranscriptions(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(3), page.Data[0].ID)
	assert.Equal(t, "Weekly sync", *page.Data[0].MeetingTitle)
}

func TestClient_ListDefaultsOmitted(t *testing.T) {
	client, mocks := newTestAPI(t)
	mocks.TranscriptionService.On("ListTranscriptions", mock.Anything, dto.ListTranscriptionsQuery{Page: 1, Limit: 20}).
		Return(&dto.PaginatedTranscriptionsResponse{Data: []model.Transcription{}, Page: 1, Limit: 20}, nil)

	page, err := client.ListTranscriptions(context.Background(), dto.ListTranscriptionsQuery{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestClient_Errors(t *testing.T) {
	client, mocks := newTestAPI(t)
	mocks.TranscriptionService.On("GetTranscription", mock.Anything, int64(42)).Return(nil, apierrors.NewNotFoundError("Transcription"))

	_, err := client.GetTranscription(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Transcription not found", apiErr.Message)
	assert.Equal(t, "not_found", apiErr.Kind)
	assert.NotEmpty(t, apiErr.RequestID)

	_, err = client.ListTranscriptions(context.Background(), dto.ListTranscriptionsQuery{Limit: 500})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "must be at most 100", apiErr.Details["limit"])
}

func TestClient_Mutations(t *testing.T) {
	client, mocks := newTestAPI(t)
	ctx := context.Background()

	mocks.TranscriptionService.On("DeleteTranscriptions", mock.Anything, []int64{1, 2, 999}).Return(int64(2), nil)
	deleted, err := client.DeleteTranscriptions(ctx, []int64{1, 2, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	updated := testutil.TestTranscriptions[1]
	updated.SetLanguage = testutil.Str("en")
	mocks.TranscriptionService.On("UpdateLanguage", mock.Anything, int64(2), "en").Return(&updated, nil)
	got, err := client.UpdateLanguage(ctx, 2, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", *got.SetLanguage)

	entry := model.CalendarEntry{
		Subject:   "Sync",
		StartDate: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		Attendees: testutil.Str("a@x.com; b@x.com"),
	}
	linked := testutil.TestTranscriptions[1]
	linked.MeetingTitle = testutil.Str("Sync")
	linked.MeetingStartDate = testutil.Time(entry.StartDate)
	linked.Participants = entry.Attendees
	mocks.TranscriptionService.On("LinkCalendar", mock.Anything, int64(42), entry.Snapshot()).Return(&linked, nil)
	got, err = client.LinkCalendar(ctx, 42, entry)
	require.NoError(t, err)
	assert.Equal(t, "Sync", *got.MeetingTitle)
	assert.True(t, entry.StartDate.Equal(*got.MeetingStartDate))
	assert.Equal(t, "a@x.com; b@x.com", *got.Participants)
}

func TestClient_Calendar(t *testing.T) {
	client, mocks := newTestAPI(t)
	day := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	mocks.CalendarService.On("EntriesOn", mock.Anything, day).Return(testutil.TestCalendarEntries, nil)
	mocks.CalendarService.On("DayEntries", mock.Anything, day).Return([]model.CalendarEntry{}, nil)
	mocks.CalendarService.On("ImportCSV", mock.Anything, "cal.csv", "subject\nSync\n", csvimport.ModeExternal).Return(nil)

	entries, err := client.CalendarEntries(context.Background(), day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = client.CalendarDay(context.Background(), day)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	err = client.ImportCalendar(context.Background(), "cal.csv", strings.NewReader("subject\nSync\n"), csvimport.ModeExternal)
	assert.NoError(t, err)
}

func TestClient_WorkflowAndHealth(t *testing.T) {
	client, mocks := newTestAPI(t)
	ctx := context.Background()

	mocks.WorkflowService.On("Start", mock.Anything).Return(nil)
	msg, err := client.StartWorkflow(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Workflow started successfully", msg)

	mocks.WorkflowService.On("Status", mock.Anything).Return(workflow.StatusReport{Status: workflow.StatusActive, Message: "1 active workflows"})
	report, err := client.WorkflowStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusActive, report.Status)

	mocks.HealthService.On("Check", mock.Anything).Return(dto.HealthResponse{}, apierrors.NewInternalError("Health check failed")).Once()
	status, err := client.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, dto.HealthResponse{}, status)
	assert.Contains(t, err.Error(), "Health check failed")

	mocks.HealthService.On("Check", mock.Anything).Return(dto.HealthResponse{Database: true}, nil).Once()
	status, err = client.Health(ctx)
	require.NoError(t, err)
	assert.True(t, status.Database)
	assert.False(t, status.N8N)
}

func TestClient_TableConfigAndSettings(t *testing.T) {
	client, mocks := newTestAPI(t)
	ctx := context.Background()

	mocks.TableConfigService.On("GetTableConfig", mock.Anything, "transcriptions").Return(testutil.TestColumnLayout, nil)
	cols, err := client.TableConfig(ctx, "transcriptions")
	require.NoError(t, err)
	require.Len(t, cols, 3)
	assert.False(t, cols[2].IsVisible)

	mocks.TableConfigService.On("PutTableConfig", mock.Anything, "transcriptions", testutil.TestColumnLayout).Return(testutil.TestColumnLayout, nil)
	saved, err := client.SaveTableConfig(ctx, "transcriptions", testutil.TestColumnLayout)
	require.NoError(t, err)
	assert.Equal(t, testutil.TestColumnLayout, saved)

	mocks.SettingsService.On("GetSetting", mock.Anything, "model").Return(model.Setting{Parameter: "model"}, nil)
	s, err := client.Setting(ctx, "model")
	require.NoError(t, err)
	assert.Nil(t, s.Value)

	mocks.SettingsService.On("PutSetting", mock.Anything, "model", testutil.Str("")).Return(model.Setting{Parameter: "model", Value: testutil.Str("")}, nil)
	s, err = client.PutSetting(ctx, "model", "")
	require.NoError(t, err)
	require.NotNil(t, s.Value)
	assert.Equal(t, "", *s.Value)

	mocks.SettingsService.On("PutSetting", mock.Anything, "aws_host", (*string)(nil)).Return(model.Setting{Parameter: "aws_host"}, nil)
	s, err = client.ClearSetting(ctx, "aws_host")
	require.NoError(t, err)
	assert.Nil(t, s.Value)

	mocks.SettingsService.On("ListSettings", mock.Anything).Return([]model.Setting{}, nil)
	all, err := client.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
