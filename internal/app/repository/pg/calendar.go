package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"transcript-control/internal/app/model"
	"transcript-control/internal/app/repository"
)

const entriesOnQuery = `SELECT id, COALESCE(subject, '') AS subject, start_date, end_date, location, attendees
	FROM calendar_entries
	WHERE DATE(start_date) = $1::date
	ORDER BY start_date ASC`

// calendar_data stores recipients split across display_to and display_cc
const dayEntriesQuery = `SELECT id, COALESCE(subject, '') AS subject, start_date, end_date,
	has_picture::text AS location,
	CONCAT_WS('; ', NULLIF(display_to, ''), NULLIF(display_cc, '')) AS attendees
	FROM calendar_data
	WHERE DATE(start_date) = $1::date
	ORDER BY start_date ASC`

// CalendarStore reads the imported calendar tables
type CalendarStore struct {
	db *sqlx.DB
}

func NewCalendarStore(db *sqlx.DB) *CalendarStore {
	return &CalendarStore{db: db}
}

func (s *CalendarStore) EntriesOn(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	return s.selectDay(ctx, entriesOnQuery, day)
}

func (s *CalendarStore) DayEntries(ctx context.Context, day time.Time) ([]model.CalendarEntry, error) {
	return s.selectDay(ctx, dayEntriesQuery, day)
}

func (s *CalendarStore) selectDay(ctx context.Context, query string, day time.Time) ([]model.CalendarEntry, error) {
	entries := []model.CalendarEntry{}
	if err := s.db.SelectContext(ctx, &entries, query, repository.DateParam(day)); err != nil {
		return nil, fmt.Errorf("select calendar entries: %w", err)
	}
	return entries, nil
}
