package repository

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	"transcript-control/internal/app/model"
)

const (
	MaxLanguageLength  = 16
	MaxParameterLength = 128
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NormalizeIDs rejects an empty or non-positive id set and collapses duplicates
func NormalizeIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, invalid("ids", "must be a non-empty array")
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, invalid("ids", "must contain only positive integers")
		}
	}
	return lo.Uniq(ids), nil
}

// ValidateLanguage checks a set_language value
func ValidateLanguage(language string) error {
	if strings.TrimSpace(language) == "" {
		return invalid("language", "is required")
	}
	if len(language) > MaxLanguageLength {
		return invalid("language", "is too long")
	}
	return nil
}

// ValidateSnapshot checks a calendar link payload. Calendar rows may have
// no subject, so an empty one is stored as an empty meeting title.
func ValidateSnapshot(s model.CalendarSnapshot) error {
	if s.StartDate.IsZero() {
		return invalid("start_date", "is required")
	}
	return nil
}

// ValidateTableName checks a UI table identifier
func ValidateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return invalid("table_name", "must be 1-64 letters, digits, '_' or '-'")
	}
	return nil
}

// ValidateColumns checks a layout before it is saved
func ValidateColumns(columns []model.ColumnConfig) error {
	for _, c := range columns {
		if strings.TrimSpace(c.ColumnName) == "" {
			return invalid("column_name", "is required")
		}
		if c.ColumnWidth <= 0 {
			return invalid("column_width", "must be a positive integer")
		}
	}
	return nil
}

// ValidateParameter checks a settings key
func ValidateParameter(parameter string) error {
	if strings.TrimSpace(parameter) == "" {
		return invalid("parameter", "is required")
	}
	if len(parameter) > MaxParameterLength {
		return invalid("parameter", "is too long")
	}
	return nil
}

// DateParam formats t as the date literal bound to ::date comparisons
func DateParam(t time.Time) string {
	return t.Format("2006-01-02")
}
