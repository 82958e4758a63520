package testutil

import (
	"time"

	"transcript-control/internal/app/model"
)

// Str returns a pointer to s
func Str(s string) *string { return &s }

// Int returns a pointer to i
func Int(i int) *int { return &i }

// Time returns a pointer to t
func Time(t time.Time) *time.Time { return &t }

// TestTranscriptions provides sample transcription rows, newest first
var TestTranscriptions = []model.Transcription{
	{
		ID:                    3,
		Filename:              "weekly_sync_2024-01-17.m4a",
		Status:                model.StatusFinished,
		SetLanguage:           Str("de"),
		MeetingTitle:          Str("Weekly sync"),
		MeetingStartDate:      Time(time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)),
		Participants:          Str("anna@example.com; ben@example.com"),
		TranscriptionDuration: Int(42),
		AudioDuration:         Int(1800),
		DetectedLanguage:      Str("de"),
		TranscriptText:        Str("Guten Morgen zusammen."),
		CreatedAt:             time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:            2,
		Filename:      "customer_call.mp3",
		Status:        model.StatusProcessing,
		AudioDuration: Int(600),
		CreatedAt:     time.Date(2024, 1, 16, 14, 45, 0, 0, time.UTC),
	},
	{
		ID:        1,
		Filename:  "corrupted.wav",
		Status:    model.StatusError,
		CreatedAt: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
	},
}

// TestCalendarEntries are meetings on 2024-01-17
var TestCalendarEntries = []model.CalendarEntry{
	{
		ID:        10,
		Subject:   "Weekly sync",
		StartDate: time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
		EndDate:   Time(time.Date(2024, 1, 17, 9, 30, 0, 0, time.UTC)),
		Location:  Str("Room 4"),
		Attendees: Str("anna@example.com; ben@example.com"),
	},
	{
		ID:        11,
		Subject:   "Planning",
		StartDate: time.Date(2024, 1, 17, 13, 0, 0, 0, time.UTC),
	},
}

// TestColumnLayout is a stored layout for the transcriptions table
var TestColumnLayout = []model.ColumnConfig{
	{TableName: "transcriptions", ColumnName: "filename", ColumnWidth: 250, ColumnOrder: 0, IsVisible: true},
	{TableName: "transcriptions", ColumnName: "status", ColumnWidth: 120, ColumnOrder: 1, IsVisible: true},
	{TableName: "transcriptions", ColumnName: "participants", ColumnWidth: 200, ColumnOrder: 2, IsVisible: false},
}
