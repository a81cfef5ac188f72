// Package dates pins all calendar and wall-clock handling to a single
// reference zone (UTC). Services and stores share these helpers so that
// "today" and displayed times never drift between components.
package dates

import (
	"fmt"
	"time"
)

const (
	// DayFormat is the wire format for calendar days.
	DayFormat = "2006-01-02"

	// ClockFormat is the wire format for time-of-day values.
	ClockFormat = "15:04:05"
)

// Today returns the current calendar day in UTC.
func Today() string {
	return Day(time.Now())
}

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// ValidDay reports whether s is a well-formed calendar day.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// Clock extracts the wall-clock portion of a timestamp in UTC.
// Postgres TIME columns scan as a time.Time anchored to an epoch date;
// extracting in any other zone shifts the value by the server offset.
func Clock(t time.Time) string {
	return t.UTC().Format(ClockFormat)
}

// NormalizeClock accepts a 15:04 or 15:04:05 value and returns the
// canonical 15:04:05 form.
func NormalizeClock(s string) (string, error) {
	if t, err := time.Parse(ClockFormat, s); err == nil {
		return t.Format(ClockFormat), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format(ClockFormat), nil
	}
	return "", fmt.Errorf("invalid clock time %q", s)
}
