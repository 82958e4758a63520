package dto

import (
	"time"

	"transcript-control/internal/api/errors"
)

const dateLayout = "2006-01-02"

// CalendarQuery is GET /api/calendar?start_date=...
// start_date may be a date or an RFC 3339 timestamp; only its day is used.
type CalendarQuery struct {
	StartDate string `form:"start_date" binding:"required"`

	day time.Time
}

// Validate parses start_date
func (q *CalendarQuery) Validate() error {
	if t, err := time.Parse(dateLayout, q.StartDate); err == nil {
		q.day = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, q.StartDate)
	if err != nil {
		return errors.NewValidationError("Invalid start_date", map[string]string{
			"start_date": "must be YYYY-MM-DD or an RFC 3339 timestamp",
		})
	}
	q.day = t
	return nil
}

// Day is the parsed start_date, valid after Validate
func (q *CalendarQuery) Day() time.Time {
	return q.day
}

// CalendarDayQuery is GET /api/calendar/day?date=YYYY-MM-DD
type CalendarDayQuery struct {
	Date string `form:"date" binding:"required"`

	day time.Time
}

// Validate parses date
func (q *CalendarDayQuery) Validate() error {
	t, err := time.Parse(dateLayout, q.Date)
	if err != nil {
		return errors.NewValidationError("Invalid date", map[string]string{
			"date": "must be YYYY-MM-DD",
		})
	}
	q.day = t
	return nil
}

// Day is the parsed date, valid after Validate
func (q *CalendarDayQuery) Day() time.Time {
	return q.day
}
