package services

import (
	"context"
	"io"
	"time"

	"transcript-control/internal/api/v1/dto"
	"transcript-control/internal/app/csvimport"
	"transcript-control/internal/app/model"
	"transcript-control/internal/app/workflow"
)

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	ListTranscriptions(ctx context.Context, query dto.ListTranscriptionsQuery) (*dto.PaginatedTranscriptionsResponse, error)
	GetTranscription(ctx context.Context, id int64) (*model.Transcription, error)
	DeleteTranscriptions(ctx context.Context, ids []int64) (int64, error)
	UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error)
	LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error)
}

// CalendarService defines the interface for calendar reads and CSV import
type CalendarService interface {
	EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error)
	DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error)
	ImportCSV(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error
}

// WorkflowService controls the n8n transcription workflow
type WorkflowService interface {
	Start(ctx context.Context) error
	Status(ctx context.Context) workflow.StatusReport
}

// HealthService reports dependency reachability
type HealthService interface {
	Check(ctx context.Context) (dto.HealthResponse, error)
}

// TableConfigService defines the interface for column layout operations
type TableConfigService interface {
	GetTableConfig(ctx context.Context, table string) ([]model.ColumnConfig, error)
	PutTableConfig(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error)
}

// SettingsService defines the interface for transcription settings
type SettingsService interface {
	ListSettings(ctx context.Context) ([]model.Setting, error)
	GetSetting(ctx context.Context, parameter string) (model.Setting, error)
	PutSetting(ctx context.Context, parameter string, value *string) (model.Setting, error)
}

// WorkflowEngine is the subset of the n8n client the services use
type WorkflowEngine interface {
	Healthy(ctx context.Context) bool
	Start(ctx context.Context) error
	Status(ctx context.Context) workflow.StatusReport
}

// CSVImporter forwards calendar exports to the import service
type CSVImporter interface {
	Import(ctx context.Context, filename string, content io.Reader, mode csvimport.Mode) error
}
