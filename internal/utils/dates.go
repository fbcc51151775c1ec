package utils

import (
	"fmt"
	"time"
)

// ParseDate accepts ISO 8601 dates: YYYY-MM-DD or full RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp renders a full RFC3339 timestamp
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
