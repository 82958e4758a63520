package tableview

import (
	"sort"
	"strings"
	"time"

	"transcript-control/internal/app/model"
)

// SortRule orders rows by one column
type SortRule struct {
	Column string
	Desc   bool
}

// compare returns -1, 0 or 1. Missing values sort after present ones
// regardless of direction.
type compareFunc func(a, b *model.Transcription) (cmp int, missing int)

func cmpString(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func cmpOptString(a, b *string) (int, int) {
	switch {
	case a == nil && b == nil:
		return 0, 0
	case a == nil:
		return 0, 1
	case b == nil:
		return 0, -1
	}
	return cmpString(*a, *b), 0
}

func cmpOptInt(a, b *int) (int, int) {
	switch {
	case a == nil && b == nil:
		return 0, 0
	case a == nil:
		return 0, 1
	case b == nil:
		return 0, -1
	}
	return cmpInt64(int64(*a), int64(*b)), 0
}

func cmpOptTime(a, b *time.Time) (int, int) {
	switch {
	case a == nil && b == nil:
		return 0, 0
	case a == nil:
		return 0, 1
	case b == nil:
		return 0, -1
	}
	return a.Compare(*b), 0
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var comparators = map[string]compareFunc{
	"id": func(a, b *model.Transcription) (int, int) { return cmpInt64(a.ID, b.ID), 0 },
	"filename": func(a, b *model.Transcription) (int, int) {
		return cmpString(a.Filename, b.Filename), 0
	},
	"transcription_status": func(a, b *model.Transcription) (int, int) {
		return cmpString(string(a.Status), string(b.Status)), 0
	},
	"set_language": func(a, b *model.Transcription) (int, int) {
		return cmpOptString(a.SetLanguage, b.SetLanguage)
	},
	"meeting_title": func(a, b *model.Transcription) (int, int) {
		return cmpOptString(a.MeetingTitle, b.MeetingTitle)
	},
	"participants": func(a, b *model.Transcription) (int, int) {
		return cmpOptString(a.Participants, b.Participants)
	},
	"meeting_start_date": func(a, b *model.Transcription) (int, int) {
		return cmpOptTime(a.MeetingStartDate, b.MeetingStartDate)
	},
	"audio_duration": func(a, b *model.Transcription) (int, int) {
		return cmpOptInt(a.AudioDuration, b.AudioDuration)
	},
	"transcription_duration": func(a, b *model.Transcription) (int, int) {
		return cmpOptInt(a.TranscriptionDuration, b.TranscriptionDuration)
	},
	"created_at": func(a, b *model.Transcription) (int, int) {
		return a.CreatedAt.Compare(b.CreatedAt), 0
	},
}

// SortableColumns lists the columns SortRule accepts
func SortableColumns() []string {
	cols := make([]string, 0, len(comparators))
	for name := range comparators {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}

// sortRows returns a sorted copy of rows. Only the fetched page is reordered.
func sortRows(rows []model.Transcription, rules []SortRule) []model.Transcription {
	out := append([]model.Transcription(nil), rows...)
	if len(rules) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, rule := range rules {
			cmpFn, ok := comparators[rule.Column]
			if !ok {
				continue
			}
			c, missing := cmpFn(&out[i], &out[j])
			if missing != 0 {
				return missing < 0
			}
			if c == 0 {
				continue
			}
			if rule.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}
