package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

// TranscriptionStore implements repository.TranscriptionRepository on Postgres
type TranscriptionStore struct {
	db *sqlx.DB
}

func NewTranscriptionStore(db *sqlx.DB) *TranscriptionStore {
	return &TranscriptionStore{db: db}
}

// List returns one page of the filtered set, newest first
func (s *TranscriptionStore) List(ctx context.Context, q repository.TranscriptionQuery) (repository.Page, error) {
	if err := q.Validate(); err != nil {
		return repository.Page{}, err
	}

	lq := repository.BuildListQueries(q)

	var total int
	if err := s.db.GetContext(ctx, &total, lq.CountSQL, lq.CountArgs...); err != nil {
		return repository.Page{}, fmt.Errorf("count transcriptions: %w", err)
	}

	var rows []model.Transcription
	if err := s.db.SelectContext(ctx, &rows, lq.DataSQL, lq.DataArgs...); err != nil {
		return repository.Page{}, fmt.Errorf("list transcriptions: %w", err)
	}

	return repository.NewPage(rows, total, q), nil
}

func (s *TranscriptionStore) Get(ctx context.Context, id int64) (*model.Transcription, error) {
	var t model.Transcription
	query := "SELECT " + repository.TranscriptionColumns + " FROM transcriptions WHERE id = $1"
	if err := s.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get transcription %d: %w", id, err)
	}
	return &t, nil
}

// BulkDelete removes every existing row in ids and reports how many went.
// Missing ids are not an error.
func (s *TranscriptionStore) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	ids, err := repository.NormalizeIDs(ids)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM transcriptions WHERE id = ANY($1)", pq.Array(ids))
		if err != nil {
			return fmt.Errorf("delete transcriptions: %w", err)
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *TranscriptionStore) UpdateLanguage(ctx context.Context, id int64, language string) (*model.Transcription, error) {
	if err := repository.ValidateLanguage(language); err != nil {
		return nil, err
	}

	var t model.Transcription
	query := "UPDATE transcriptions SET set_language = $1 WHERE id = $2 RETURNING " + repository.TranscriptionColumns
	if err := s.db.GetContext(ctx, &t, query, language, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update language of %d: %w", id, err)
	}
	return &t, nil
}

// LinkCalendar copies the snapshot onto the row. The copy is not kept in sync
// with the calendar entry afterwards.
func (s *TranscriptionStore) LinkCalendar(ctx context.Context, id int64, snapshot model.CalendarSnapshot) (*model.Transcription, error) {
	if err := repository.ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}

	var t model.Transcription
	err := WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		query := `UPDATE transcriptions
			SET meeting_title = $1, meeting_start_date = $2, participants = $3
			WHERE id = $4
			RETURNING ` + repository.TranscriptionColumns
		err := tx.GetContext(ctx, &t, query, snapshot.Subject, snapshot.StartDate, snapshot.Attendees, id)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("link calendar to %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
