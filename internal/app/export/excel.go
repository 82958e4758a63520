package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"

	"transcript-control/internal/app/model"
)

var headers = []string{
	"ID", "Filename", "Status", "Language", "Detected Language", "Meeting", "Meeting Start",
	"Participants", "Audio Duration (s)", "Transcription Duration (s)", "Created", "Transcript",
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func optTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// transcript prefers the corrected text
func transcript(t model.Transcription) string {
	if t.CorrectedText != nil {
		return *t.CorrectedText
	}
	return optString(t.TranscriptText)
}

// ToExcel writes one sheet with a header row and one row per transcription
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().Value = h
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().SetInt64(t.ID)
		row.AddCell().Value = t.Filename
		row.AddCell().Value = string(t.Status)
		row.AddCell().Value = optString(t.SetLanguage)
		row.AddCell().Value = optString(t.DetectedLanguage)
		row.AddCell().Value = optString(t.MeetingTitle)
		row.AddCell().Value = optTime(t.MeetingStartDate)
		row.AddCell().Value = optString(t.Participants)
		row.AddCell().Value = optInt(t.AudioDuration)
		row.AddCell().Value = optInt(t.TranscriptionDuration)
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = transcript(t)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
