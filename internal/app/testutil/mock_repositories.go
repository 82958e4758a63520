package testutil

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
	"transcript-control/internal/app/workflow"
)

// MockTranscriptionRepository is a mock implementation of repository.TranscriptionRepository
type MockTranscriptionRepository struct {
	mock.Mock
}

func NewMockTranscriptionRepository(t *testing.T) *MockTranscriptionRepository {
	m := &MockTranscriptionRepository{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionRepository) List(ctx context.Context, q repository.TranscriptionQuery) (repository.Page, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(repository.Page), args.Error(1)
}

func (m *MockTranscriptionRepository) Get(ctx context.Context, id int64) (*model.Transcription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockTranscriptionRepository) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTranscriptionRepository) UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockTranscriptionRepository) LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error) {
	args := m.Called(ctx, id, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

// MockCalendarRepository is a mock implementation of repository.CalendarRepository
type MockCalendarRepository struct {
	mock.Mock
}

func NewMockCalendarRepository(t *testing.T) *MockCalendarRepository {
	m := &MockCalendarRepository{}
	m.Test(t)
	return m
}

func (m *MockCalendarRepository) EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEntry), args.Error(1)
}

func (m *MockCalendarRepository) DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CalendarEntry), args.Error(1)
}

// MockColumnConfigRepository is a mock implementation of repository.ColumnConfigRepository
type MockColumnConfigRepository struct {
	mock.Mock
}

func NewMockColumnConfigRepository(t *testing.T) *MockColumnConfigRepository {
	m := &MockColumnConfigRepository{}
	m.Test(t)
	return m
}

func (m *MockColumnConfigRepository) Get(ctx context.Context, table string) ([]model.ColumnConfig, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ColumnConfig), args.Error(1)
}

func (m *MockColumnConfigRepository) Put(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error) {
	args := m.Called(ctx, table, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ColumnConfig), args.Error(1)
}

// MockSettingsRepository is a mock implementation of repository.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func NewMockSettingsRepository(t *testing.T) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Test(t)
	return m
}

func (m *MockSettingsRepository) List(ctx context.Context) ([]model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingsRepository) Get(ctx context.Context, parameter string) (model.Setting, error) {
	args := m.Called(ctx, parameter)
	return args.Get(0).(model.Setting), args.Error(1)
}

func (m *MockSettingsRepository) Put(ctx context.Context, parameter string, value *string) (model.Setting, error) {
	args := m.Called(ctx, parameter, value)
	return args.Get(0).(model.Setting), args.Error(1)
}

// MockHealthChecker is a mock implementation of repository.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func NewMockHealthChecker(t *testing.T) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Test(t)
	return m
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockWorkflowEngine stands in for the n8n client
type MockWorkflowEngine struct {
	mock.Mock
}

func NewMockWorkflowEngine(t *testing.T) *MockWorkflowEngine {
	m := &MockWorkflowEngine{}
	m.Test(t)
	return m
}

func (m *MockWorkflowEngine) Healthy(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func (m *MockWorkflowEngine) Start(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockWorkflowEngine) Status(ctx context.Context) workflow.StatusReport {
	return m.Called(ctx).Get(0).(workflow.StatusReport)
}

// MockCSVImporter stands in for the CSV import client
type MockCSVImporter struct {
	mock.Mock
}

func NewMockCSVImporter(t *testing.T) *MockCSVImporter {
	m := &MockCSVImporter{}
	m.Test(t)
	return m
}

func (m *MockCSVImporter) Import(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error {
	return m.Called(ctx, filename, content, mode).Error(0)
}
