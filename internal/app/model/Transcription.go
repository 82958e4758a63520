package model

import "time"

// TranscriptionStatus is the processing state reported by the ingestion pipeline
type TranscriptionStatus string

const (
	StatusPending    TranscriptionStatus = "pending"
	StatusProcessing TranscriptionStatus = "processing"
	StatusFinished   TranscriptionStatus = "finished"
	StatusError      TranscriptionStatus = "error"
)

// Valid reports whether s is one of the known statuses
func (s TranscriptionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusFinished, StatusError:
		return true
	}
	return false
}

// Transcription is one row of the transcriptions table.
// Rows are created by the external ingestion process; this service only
// changes set_language and the meeting snapshot fields, or deletes rows.
type Transcription struct {
	ID                    int64               `db:"id" json:"id"`
	Filename              string              `db:"filename" json:"filename"`
	Status                TranscriptionStatus `db:"transcription_status" json:"transcription_status"`
	SetLanguage           *string             `db:"set_language" json:"set_language"`
	MeetingTitle          *string             `db:"meeting_title" json:"meeting_title"`
	MeetingStartDate      *time.Time          `db:"meeting_start_date" json:"meeting_start_date"`
	Participants          *string             `db:"participants" json:"participants"`
	TranscriptionDuration *int                `db:"transcription_duration" json:"transcription_duration"`
	AudioDuration         *int                `db:"audio_duration" json:"audio_duration"`
	DetectedLanguage      *string             `db:"detected_language" json:"detected_language"`
	TranscriptText        *string             `db:"transcript_text" json:"transcript_text"`
	CorrectedText         *string             `db:"corrected_text" json:"corrected_text"`
	RecordingDate         *time.Time          `db:"recording_date" json:"recording_date"`
	CreatedAt             time.Time           `db:"created_at" json:"created_at"`
}

// Language returns set_language or "" when unset
func (t *Transcription) Language() string {
	if t.SetLanguage == nil {
		return ""
	}
	return *t.SetLanguage
}
