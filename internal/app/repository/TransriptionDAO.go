package repository

import (
	"context"
	"time"

	"transcript-control/internal/app/model"
)

// TranscriptionRepository reads and mutates transcription rows.
// Every mutation is all-or-nothing.
type TranscriptionRepository interface {
	List(ctx context.Context, q TranscriptionQuery) (Page, error)
	Get(ctx context.Context, id int64) (*model.Transcription, error)
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
	UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error)
	LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error)
}

// CalendarRepository reads imported calendar data
type CalendarRepository interface {
	// EntriesOn returns calendar_entries starting on the given day
	EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error)
	// DayEntries returns calendar_data rows for the day with recipients merged into attendees
	DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error)
}

// ColumnConfigRepository persists table column layouts
type ColumnConfigRepository interface {
	Get(ctx context.Context, table string) ([]model.ColumnConfig, error)
	Put(ctx context.Context, table string, columns []model.ColumnConfig) ([]model.ColumnConfig, error)
}

// SettingsRepository is the transcription_settings key/value store
type SettingsRepository interface {
	List(ctx context.Context) ([]model.Setting, error)
	Get(ctx context.Context, parameter string) (model.Setting, error)
	Put(ctx context.Context, parameter string, value *string) (model.Setting, error)
}

// HealthChecker reports database reachability
type HealthChecker interface {
	Ping(ctx context.Context) error
}
