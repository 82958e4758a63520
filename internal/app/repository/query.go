package repository

import (
	"fmt"
	"math"
	"strings"

	"transcript-control/internal/app/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// TranscriptionColumns is the explicit select list for the transcriptions table
const TranscriptionColumns = `id, filename, transcription_status, set_language, meeting_title,
	meeting_start_date, participants, transcription_duration, audio_duration,
	detected_language, transcript_text, corrected_text, recording_date, created_at`

// TranscriptionQuery selects one page of transcriptions.
// Empty Search, Status and Language impose no constraint.
type TranscriptionQuery struct {
	Page     int
	Limit    int
	Search   string
	Status   model.TranscriptionStatus
	Language string
}

// Validate rejects out of range pagination and unknown statuses
func (q TranscriptionQuery) Validate() error {
	if q.Page < 1 {
		return invalid("page", "must be a positive integer")
	}
	if q.Limit < 1 {
		return invalid("limit", "must be a positive integer")
	}
	if q.Limit > MaxLimit {
		return invalid("limit", fmt.Sprintf("must not exceed %d", MaxLimit))
	}
	// keeps Offset from overflowing
	if q.Page-1 > math.MaxInt32/q.Limit {
		return invalid("page", "is out of range")
	}
	if q.Status != "" && !q.Status.Valid() {
		return invalid("status", "must be one of pending, processing, finished, error")
	}
	return nil
}

// Offset returns the number of rows skipped before this page
func (q TranscriptionQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ListQueries is the count and data statement pair for one page.
// Both share the same WHERE clause; DataArgs extends CountArgs with limit and offset.
type ListQueries struct {
	CountSQL  string
	DataSQL   string
	CountArgs []interface{}
	DataArgs  []interface{}
}

// BuildListQueries renders q into parameterized SQL. User values are only ever bound.
func BuildListQueries(q TranscriptionQuery) ListQueries {
	var (
		clauses []string
		args    []interface{}
	)
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		p := next("%" + escapeLike(search) + "%")
		clauses = append(clauses, fmt.Sprintf("(filename ILIKE %s OR meeting_title ILIKE %s)", p, p))
	}
	if q.Status != "" {
		clauses = append(clauses, "transcription_status = "+next(string(q.Status)))
	}
	if q.Language != "" {
		clauses = append(clauses, "set_language = "+next(q.Language))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	countArgs := append([]interface{}(nil), args...)
	limit := next(q.Limit)
	offset := next(q.Offset())

	return ListQueries{
		CountSQL:  "SELECT COUNT(*) FROM transcriptions" + where,
		DataSQL:   fmt.Sprintf("SELECT %s FROM transcriptions%s ORDER BY created_at DESC, id DESC LIMIT %s OFFSET %s", TranscriptionColumns, where, limit, offset),
		CountArgs: countArgs,
		DataArgs:  args,
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Page is one window of the filtered transcription set
type Page struct {
	Rows       []model.Transcription
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// NewPage assembles a Page for q
func NewPage(rows []model.Transcription, total int, q TranscriptionQuery) Page {
	if rows == nil {
		rows = []model.Transcription{}
	}
	return Page{
		Rows:       rows,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: TotalPages(total, q.Limit),
	}
}

// TotalPages is ceil(total/limit), 0 when there are no rows
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
