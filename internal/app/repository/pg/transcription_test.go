package pg

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// TestTranscriptionStore_Interface verifies the store satisfies the repository contract
func TestTranscriptionStore_Interface(t *testing.T) {
	var _ repository.TranscriptionRepository = (*TranscriptionStore)(nil)
	var _ repository.CalendarRepository = (*CalendarStore)(nil)
	var _ repository.ColumnConfigRepository = (*ColumnConfigStore)(nil)
	var _ repository.SettingsRepository = (*SettingsStore)(nil)
	var _ repository.HealthChecker = (*Health)(nil)
}

func TestTranscriptionStore_List(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)
	created := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transcriptions WHERE transcription_status = $1 AND set_language = $2")).
		WithArgs("error", "de").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rows := sqlmock.NewRows(transcriptionCols)
	transcriptionRow(rows, 7, "b.mp3", "error", "de", created)
	transcriptionRow(rows, 5, "a.mp3", "error", "de", created.Add(-time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM transcriptions WHERE transcription_status = \$1 AND set_language = \$2 ORDER BY created_at DESC, id DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("error", "de", 2, 0).
		WillReturnRows(rows)

	page, err := store.List(context.Background(), repository.TranscriptionQuery{
		Page: 1, Limit: 2, Status: model.StatusError, Language: "de",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Rows, 2)
	for _, r := range page.Rows {
		assert.Equal(t, model.StatusError, r.Status)
		assert.Equal(t, "de", r.Language())
	}
	assert.Equal(t, int64(7), page.Rows[0].ID)
	assert.Nil(t, page.Rows[0].MeetingTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_List_Empty(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transcriptions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM transcriptions ORDER BY`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(transcriptionCols))

	page, err := store.List(context.Background(), repository.TranscriptionQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.NotNil(t, page.Rows)
	assert.Equal(t, 0, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_List_RejectsInvalidQuery(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	_, err := store.List(context.Background(), repository.TranscriptionQuery{Page: 0, Limit: 20})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	// a page whose offset overflows never reaches the database
	_, err = store.List(context.Background(), repository.TranscriptionQuery{Page: math.MaxInt64, Limit: 20})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_List_CountFailure(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).WillReturnError(sql.ErrConnDone)

	_, err := store.List(context.Background(), repository.TranscriptionQuery{Page: 1, Limit: 20})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_BulkDelete(t *testing.T) {
	t.Run("missing ids are not an error", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions WHERE id = ANY($1)")).
			WithArgs(pq.Array([]int64{1, 2, 999})).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		deleted, err := store.BulkDelete(context.Background(), []int64{1, 2, 999})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions WHERE id = ANY($1)")).
			WithArgs(pq.Array([]int64{4, 5})).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		deleted, err := store.BulkDelete(context.Background(), []int64{4, 5, 4})
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transcriptions")).
			WillReturnError(&pq.Error{Code: "23503", Message: "foreign key violation"})
		mock.ExpectRollback()

		deleted, err := store.BulkDelete(context.Background(), []int64{1})
		var pqErr *pq.Error
		require.True(t, errors.As(err, &pqErr))
		assert.Equal(t, int64(0), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set is rejected before any statement", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		_, err := store.BulkDelete(context.Background(), []int64{})
		assert.ErrorIs(t, err, repository.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTranscriptionStore_UpdateLanguage(t *testing.T) {
	created := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	updateRe := `UPDATE transcriptions SET set_language = \$1 WHERE id = \$2 RETURNING`

	t.Run("returns the updated row", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		rows := sqlmock.NewRows(transcriptionCols)
		transcriptionRow(rows, 11, "call.mp3", "finished", "fr", created)
		mock.ExpectQuery(updateRe).WithArgs("fr", int64(11)).WillReturnRows(rows)

		tr, err := store.UpdateLanguage(context.Background(), 11, "fr")
		require.NoError(t, err)
		assert.Equal(t, "fr", tr.Language())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		mock.ExpectQuery(updateRe).WithArgs("de", int64(404)).WillReturnRows(sqlmock.NewRows(transcriptionCols))

		tr, err := store.UpdateLanguage(context.Background(), 404, "de")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, tr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty language never reaches the database", func(t *testing.T) {
		db, mock := newMock(t)
		store := NewTranscriptionStore(db)

		_, err := store.UpdateLanguage(context.Background(), 1, "")
		assert.ErrorIs(t, err, repository.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTranscriptionStore_LinkCalendar_ThenGet(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	start := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	created := start.Add(-24 * time.Hour)
	attendees := "a@x.com; b@x.com"
	linked := func() *sqlmock.Rows {
		return sqlmock.NewRows(transcriptionCols).AddRow(
			int64(42), "sync.mp3", "finished", nil, "Sync", start, attendees,
			nil, nil, nil, nil, nil, nil, created)
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE transcriptions\s+SET meeting_title = \$1, meeting_start_date = \$2, participants = \$3\s+WHERE id = \$4`).
		WithArgs("Sync", start, attendees, int64(42)).
		WillReturnRows(linked())
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM transcriptions WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(linked())

	_, err := store.LinkCalendar(context.Background(), 42, model.CalendarSnapshot{
		Subject:   "Sync",
		StartDate: start,
		Attendees: &attendees,
	})
	require.NoError(t, err)

	got, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, got.MeetingTitle)
	assert.Equal(t, "Sync", *got.MeetingTitle)
	require.NotNil(t, got.MeetingStartDate)
	assert.True(t, start.Equal(*got.MeetingStartDate))
	require.NotNil(t, got.Participants)
	assert.Equal(t, attendees, *got.Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_LinkCalendar_NotFoundRollsBack(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE transcriptions`).WillReturnRows(sqlmock.NewRows(transcriptionCols))
	mock.ExpectRollback()

	_, err := store.LinkCalendar(context.Background(), 9, model.CalendarSnapshot{
		Subject:   "Sync",
		StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptionStore_Get_NotFound(t *testing.T) {
	db, mock := newMock(t)
	store := NewTranscriptionStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM transcriptions WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), 3)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
