package utils

import (
	"fmt"
	"time"

	"github.com/true1853/Nykha-bot/internal/constants"
)

// DateOf returns the calendar date of t (YYYY-MM-DD) in t's own location.
func DateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysBefore returns the date n calendar days before t.
// AddDate keeps the result on a date boundary across DST changes.
func DaysBefore(t time.Time, n int) string {
	return t.AddDate(0, 0, -n).Format(constants.DateFormat)
}

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is a loadable IANA name.
func ValidateTimezone(timezone string) bool {
	if timezone == "" {
		return false
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// ParseClock parses an HH:MM wall-clock time into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextUTC returns the first instant strictly after now that falls on hour:minute UTC.
func NextUTC(now time.Time, hour, minute int) time.Time {
	u := now.UTC()
	next := time.Date(u.Year(), u.Month(), u.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(u) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
