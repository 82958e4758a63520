package testutil

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/workflow"
)

// MockServices contains all mock services for testing
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	CalendarService      *MockCalendarService
	WorkflowService      *MockWorkflowService
	HealthService        *MockHealthService
	TableConfigService   *MockTableConfigService
	SettingsService      *MockSettingsService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranscriptionService: NewMockTranscriptionService(t),
		CalendarService:      NewMockCalendarService(t),
		WorkflowService:      NewMockWorkflowService(t),
		HealthService:        NewMockHealthService(t),
		TableConfigService:   NewMockTableConfigService(t),
		SettingsService:      NewMockSettingsService(t),
	}
}

// AssertExpectations checks every mock in the set
func (m *MockServices) AssertExpectations(t *testing.T) {
	m.TranscriptionService.AssertExpectations(t)
	m.CalendarService.AssertExpectations(t)
	m.WorkflowService.AssertExpectations(t)
	m.HealthService.AssertExpectations(t)
	m.TableConfigService.AssertExpectations(t)
	m.SettingsService.AssertExpectations(t)
}

// MockTranscriptionService is a mock implementation of TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) ListTranscriptions(ctx context.Context, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedTranscriptionsResponse), args.Error(1)
}

func (m *MockTranscriptionService) GetTranscription(ctx context.Context, id int64) (*model.Transcription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockTranscriptionService) DeleteTranscriptions(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTranscriptionService) UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockTranscriptionService) LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error) {
	args := m.Called(ctx, id, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

// MockCalendarService is a mock implementation of CalendarService
type MockCalendarService struct {
	mock.Mock
}

func NewMockCalendarService(t *testing.T) *MockCalendarService {
	m := &MockCalendarService{}
	m.Test(t)
	return m
}

func (m *MockCalendarService) EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEntry), args.Error(1)
}

func (m *MockCalendarService) DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEntry), args.Error(1)
}

// ImportCSV records the uploaded bytes as a string so tests can match on them
func (m *MockCalendarService) ImportCSV(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error {
	body, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	args := m.Called(ctx, filename, string(body), mode)
	return args.Error(0)
}

// MockWorkflowService is a mock implementation of WorkflowService
type MockWorkflowService struct {
	mock.Mock
}

func NewMockWorkflowService(t *testing.T) *MockWorkflowService {
	m := &MockWorkflowService{}
	m.Test(t)
	return m
}

func (m *MockWorkflowService) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkflowService) Status(ctx context.Context) workflow.StatusReport {
	args := m.Called(ctx)
	return args.Get(0).(workflow.StatusReport)
}

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	mock.Mock
}

func NewMockHealthService(t *testing.T) *MockHealthService {
	m := &MockHealthService{}
	m.Test(t)
	return m
}

func (m *MockHealthService) Check(ctx context.Context) (dto.HealthResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.HealthResponse), args.Error(1)
}

// MockTableConfigService is a mock implementation of TableConfigService
type MockTableConfigService struct {
	mock.Mock
}

func NewMockTableConfigService(t *testing.T) *MockTableConfigService {
	m := &MockTableConfigService{}
	m.Test(t)
	return m
}

func (m *MockTableConfigService) GetTableConfig(ctx context.Context, table string) ([]model.ColumnConfig, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ColumnConfig), args.Error(1)
}

func (m *MockTableConfigService) PutTableConfig(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error) {
	args := m.Called(ctx, table, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ColumnConfig), args.Error(1)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

func NewMockSettingsService(t *testing.T) *MockSettingsService {
	m := &MockSettingsService{}
	m.Test(t)
	return m
}

func (m *MockSettingsService) ListSettings(ctx context.Context) ([]model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingsService) GetSetting(ctx context.Context, parameter string) (model.Setting, error) {
	args := m.Called(ctx, parameter)
	return args.Get(0).(model.Setting), args.Error(1)
}

func (m *MockSettingsService) PutSetting(ctx context.Context, parameter string, value *string) (model.Setting, error) {
	args := m.Called(ctx, parameter, value)
	return args.Get(0).(model.Setting), args.Error(1)
}
