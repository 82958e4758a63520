package model

import "time"

// CalendarEntry is a meeting imported from an external calendar export.
// It is read-only here.
type CalendarEntry struct {
	ID        int64      `db:"id" json:"id"`
	Subject   string     `db:"subject" json:"subject"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date"`
	Location  *string    `db:"location" json:"location,omitempty"`
	Attendees *string    `db:"attendees" json:"attendees,omitempty"`
}

// CalendarSnapshot is the part of a calendar entry copied onto a
// transcription when the two are linked. The copy is never refreshed.
type CalendarSnapshot struct {
	Subject   string
	StartDate time.Time
	Attendees *string
}

// Snapshot returns the fields of e that a link copies
func (e CalendarEntry) Snapshot() CalendarSnapshot {
	return CalendarSnapshot{
		Subject:   e.Subject,
		StartDate: e.StartDate,
		Attendees: e.Attendees,
	}
}
