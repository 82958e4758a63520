package pg

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var transcriptionCols = []string{
	"id", "filename", "transcription_status", "set_language", "meeting_title",
	"meeting_start_date", "participants", "transcription_duration", "audio_duration",
	"detected_language", "transcript_text", "corrected_text", "recording_date", "created_at",
}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

// transcriptionRow builds a row with the nullable columns unset
func transcriptionRow(rows *sqlmock.Rows, id int64, filename, status string, language interface{}, created time.Time) *sqlmock.Rows {
	return rows.AddRow(id, filename, status, language, nil, nil, nil, nil, nil, nil, nil, nil, nil, created)
}
