package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
	"transcript-control/internal/app/testutil"
	"transcript-control/internal/app/workflow"
)

func asAPIError(t *testing.T, err error) *errors.APIError {
	t.Helper()
	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr), "expected APIError, got %T", err)
	return apiErr
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    errors.ErrorKind
		wantMessage string
		wantDetails map[string]string
		wantLogged  bool
	}{
		{
			name:        "not found",
			err:         fmt.Errorf("get: %w", repository.ErrNotFound),
			wantKind:    errors.KindNotFound,
			wantMessage: "Transcription not found",
		},
		{
			name:        "field error",
			err:         &repository.FieldError{Field: "ids", Message: "must not be empty"},
			wantKind:    errors.KindValidation,
			wantMessage: "ids must not be empty",
			wantDetails: map[string]string{"ids": "must not be empty"},
		},
		{
			name:        "bare invalid input",
			err:         repository.ErrInvalidInput,
			wantKind:    errors.KindValidation,
			wantMessage: "invalid input",
		},
		{
			name:        "foreign key",
			err:         &pq.Error{Code: "23503"},
			wantKind:    errors.KindConflict,
			wantMessage: "Transcription is still referenced",
		},
		{
			name:        "unique violation",
			err:         &pq.Error{Code: "23505"},
			wantKind:    errors.KindConflict,
			wantMessage: "Transcription already exists",
		},
		{
			name:        "api error passes through",
			err:         errors.NewBadRequestError("nope"),
			wantKind:    errors.KindBadRequest,
			wantMessage: "nope",
		},
		{
			name:        "unexpected error is hidden",
			err:         stderrors.New("pq: password authentication failed"),
			wantKind:    errors.KindInternal,
			wantMessage: "Failed to fetch transcriptions",
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			err := mapError(zap.New(core), "Transcription", "Failed to fetch transcriptions", tt.err)

			apiErr := asAPIError(t, err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, apiErr.Details)
			}
			assert.False(t, strings.Contains(apiErr.Message, "password"))
			assert.Equal(t, tt.wantLogged, logs.FilterLevelExact(zapcore.ErrorLevel).Len() == 1)
		})
	}
}

func TestMapError_NilAndCanceled(t *testing.T) {
	assert.NoError(t, mapError(zap.NewNop(), "x", "y", nil))

	core, logs := observer.New(zapcore.DebugLevel)
	err := mapError(zap.New(core), "Transcription", "Failed", context.Canceled)
	assert.Equal(t, errors.KindInternal, asAPIError(t, err).Kind)
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}

func TestTranscriptionService_ListTranscriptions(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())
	ctx := context.Background()

	query := dto.ListTranscriptionsQuery{Page: 2, Limit: 1, Status: "finished"}
	q := query.ToQuery()
	repo.On("List", ctx, q).Return(repository.NewPage(testutil.TestTranscriptions[:1], 3, q), nil)

	resp, err := svc.ListTranscriptions(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 1, resp.Limit)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Data, 1)
	repo.AssertExpectations(t)
}

func TestTranscriptionService_ListFailureHidesCause(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())

	repo.On("List", mock.Anything, mock.Anything).Return(repository.Page{}, stderrors.New("connection refused"))

	_, err := svc.ListTranscriptions(context.Background(), dto.ListTranscriptionsQuery{Page: 1, Limit: 20})
	apiErr := asAPIError(t, err)
	assert.Equal(t, errors.KindInternal, apiErr.Kind)
	assert.Equal(t, "Failed to fetch transcriptions", apiErr.Message)
}

func TestTranscriptionService_DeleteTranscriptions(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())

	repo.On("BulkDelete", mock.Anything, []int64{1, 2, 999}).Return(int64(2), nil)
	deleted, err := svc.DeleteTranscriptions(context.Background(), []int64{1, 2, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	repo.On("BulkDelete", mock.Anything, []int64{}).Return(int64(0), &repository.FieldError{Field: "ids", Message: "must not be empty"})
	_, err = svc.DeleteTranscriptions(context.Background(), []int64{})
	assert.Equal(t, errors.KindValidation, asAPIError(t, err).Kind)
}

func TestTranscriptionService_UpdateLanguage(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())

	updated := testutil.TestTranscriptions[0]
	updated.SetLanguage = testutil.Str("en")
	repo.On("UpdateLanguage", mock.Anything, int64(3), "en").Return(&updated, nil)
	repo.On("UpdateLanguage", mock.Anything, int64(404), "en").Return(nil, repository.ErrNotFound)

	got, err := svc.UpdateLanguage(context.Background(), 3, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", *got.SetLanguage)

	_, err = svc.UpdateLanguage(context.Background(), 404, "en")
	apiErr := asAPIError(t, err)
	assert.Equal(t, errors.KindNotFound, apiErr.Kind)
	assert.Equal(t, "Transcription not found", apiErr.Message)
}

func TestTranscriptionService_LinkCalendar(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())

	snap := testutil.TestCalendarEntries[0].Snapshot()
	linked := testutil.TestTranscriptions[1]
	linked.MeetingTitle = &snap.Subject
	repo.On("LinkCalendar", mock.Anything, int64(2), snap).Return(&linked, nil)

	got, err := svc.LinkCalendar(context.Background(), 2, snap)
	require.NoError(t, err)
	assert.Equal(t, "Weekly sync", *got.MeetingTitle)
}

func TestTranscriptionService_GetTranscription(t *testing.T) {
	repo := testutil.NewMockTranscriptionRepository(t)
	svc := NewTranscriptionService(repo, zap.NewNop())

	row := testutil.TestTranscriptions[2]
	repo.On("Get", mock.Anything, int64(1)).Return(&row, nil)
	repo.On("Get", mock.Anything, int64(7)).Return(nil, repository.ErrNotFound)

	got, err := svc.GetTranscription(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusError, got.Status)

	_, err = svc.GetTranscription(context.Background(), 7)
	assert.Equal(t, errors.KindNotFound, asAPIError(t, err).Kind)
}

func TestCalendarService(t *testing.T) {
	repo := testutil.NewMockCalendarRepository(t)
	importer := testutil.NewMockCSVImporter(t)
	svc := NewCalendarService(repo, importer, zap.NewNop())
	day := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	repo.On("EntriesOn", mock.Anything, day).Return(testutil.TestCalendarEntries, nil)
	repo.On("DayEntries", mock.Anything, day).Return(nil, stderrors.New("boom"))

	entries, err := svc.EntriesOn(context.Background(), day)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = svc.DayEntries(context.Background(), day)
	apiErr := asAPIError(t, err)
	assert.Equal(t, "Failed to fetch calendar data by day", apiErr.Message)
}

func TestCalendarService_ImportCSV(t *testing.T) {
	repo := testutil.NewMockCalendarRepository(t)
	importer := testutil.NewMockCSVImporter(t)
	svc := NewCalendarService(repo, importer, zap.NewNop())

	importer.On("Import", mock.Anything, "ok.csv", mock.Anything, csvimport.ModeExternal).Return(nil)
	importer.On("Import", mock.Anything, "bad.csv", mock.Anything, csvimport.ModeInternal).Return(stderrors.New("502"))

	require.NoError(t, svc.ImportCSV(context.Background(), "ok.csv", strings.NewReader("a,b"), csvimport.ModeExternal))

	err := svc.ImportCSV(context.Background(), "bad.csv", strings.NewReader("a,b"), csvimport.ModeInternal)
	apiErr := asAPIError(t, err)
	assert.Equal(t, errors.KindServiceUnavailable, apiErr.Kind)
	assert.Equal(t, "Failed to import calendar CSV", apiErr.Message)
	importer.AssertExpectations(t)
}

func TestWorkflowService(t *testing.T) {
	engine := testutil.NewMockWorkflowEngine(t)
	svc := NewWorkflowService(engine)

	engine.On("Start", mock.Anything).Return(stderrors.New("connection refused")).Once()
	err := svc.Start(context.Background())
	apiErr := asAPIError(t, err)
	assert.Equal(t, errors.KindServiceUnavailable, apiErr.Kind)
	assert.Equal(t, "Failed to start workflow", apiErr.Message)

	engine.On("Start", mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.Start(context.Background()))

	report := workflow.StatusReport{Status: workflow.StatusActive, Message: "2 active workflows"}
	engine.On("Status", mock.Anything).Return(report)
	assert.Equal(t, report, svc.Status(context.Background()))
}

func TestHealthService_Check(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		db := testutil.NewMockHealthChecker(t)
		engine := testutil.NewMockWorkflowEngine(t)
		db.On("Ping", mock.Anything).Return(nil)
		engine.On("Healthy", mock.Anything).Return(true)

		resp, err := NewHealthService(db, engine, zap.NewNop()).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dto.HealthResponse{Database: true, N8N: true}, resp)
	})

	t.Run("n8n down is not an error", func(t *testing.T) {
		db := testutil.NewMockHealthChecker(t)
		engine := testutil.NewMockWorkflowEngine(t)
		db.On("Ping", mock.Anything).Return(nil)
		engine.On("Healthy", mock.Anything).Return(false)

		resp, err := NewHealthService(db, engine, zap.NewNop()).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dto.HealthResponse{Database: true, N8N: false}, resp)
	})

	t.Run("database down", func(t *testing.T) {
		db := testutil.NewMockHealthChecker(t)
		engine := testutil.NewMockWorkflowEngine(t)
		db.On("Ping", mock.Anything).Return(stderrors.New("dial tcp: refused"))

		_, err := NewHealthService(db, engine, zap.NewNop()).Check(context.Background())
		apiErr := asAPIError(t, err)
		assert.Equal(t, "Health check failed", apiErr.Message)
		engine.AssertNotCalled(t, "Healthy", mock.Anything)
	})
}

func TestTableConfigService(t *testing.T) {
	repo := testutil.NewMockColumnConfigRepository(t)
	svc := NewTableConfigService(repo, zap.NewNop())

	repo.On("Get", mock.Anything, "transcriptions").Return(testutil.TestColumnLayout, nil)
	repo.On("Get", mock.Anything, "bad name").Return(nil, &repository.FieldError{Field: "tableName", Message: "is invalid"})
	repo.On("Put", mock.Anything, "transcriptions", testutil.TestColumnLayout).Return(testutil.TestColumnLayout, nil)

	cols, err := svc.GetTableConfig(context.Background(), "transcriptions")
	require.NoError(t, err)
	assert.Len(t, cols, 3)

	_, err = svc.GetTableConfig(context.Background(), "bad name")
	assert.Equal(t, errors.KindValidation, asAPIError(t, err).Kind)

	cols, err = svc.PutTableConfig(context.Background(), "transcriptions", testutil.TestColumnLayout)
	require.NoError(t, err)
	assert.Equal(t, testutil.TestColumnLayout, cols)
}

func TestSettingsService(t *testing.T) {
	repo := testutil.NewMockSettingsRepository(t)
	svc := NewSettingsService(repo, zap.NewNop())

	repo.On("Get", mock.Anything, "model").Return(model.Setting{Parameter: "model"}, nil)
	repo.On("Put", mock.Anything, "model", testutil.Str("large-v3")).Return(model.Setting{Parameter: "model", Value: testutil.Str("large-v3")}, nil)
	repo.On("List", mock.Anything).Return(nil, stderrors.New("boom"))

	s, err := svc.GetSetting(context.Background(), "model")
	require.NoError(t, err)
	assert.Nil(t, s.Value)

	s, err = svc.PutSetting(context.Background(), "model", testutil.Str("large-v3"))
	require.NoError(t, err)
	assert.Equal(t, "large-v3", *s.Value)

	_, err = svc.ListSettings(context.Background())
	assert.Equal(t, "Failed to fetch transcription settings", asAPIError(t, err).Message)
}
