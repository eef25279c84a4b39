package repository

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by ID or by state matches no row.
var ErrNotFound = errors.New("not found")

// timeLayout is RFC3339 with a fixed-width fraction so stored timestamps sort
// lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString returns nil (SQL NULL) for a nil pointer, otherwise the
// formatted time.
func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nowUTC returns the current time in the storage layout.
func nowUTC() string {
	return formatTime(time.Now())
}
