package repository

import (
	"database/sql"
	"time"
)

// Timestamps are stored as RFC3339 text in UTC.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// formatOptionalTime maps nil to SQL NULL.
func formatOptionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// parseOptionalTime treats NULL and unparseable text alike as unset.
func parseOptionalTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// optionalText maps nil and "" to SQL NULL.
func optionalText[T ~string](v *T) any {
	if v == nil || *v == "" {
		return nil
	}
	return string(*v)
}

func sqliteBool(b bool) int {
	if b {
		return 1
	}
	return 0
}
