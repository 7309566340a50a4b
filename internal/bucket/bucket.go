// Package bucket converts wall-clock instants into canonical hour slot keys.
package bucket

import (
	"fmt"
	"time"
)

// KeyLayout is the slot key format: an hour-aligned local timestamp.
const KeyLayout = "2006-01-02 15:04:05"

func hourStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// Down truncates an instant to the start of its hour and returns the slot key.
// This is the policy used for all regular entries (pain, activity, notes).
func Down(t time.Time) string {
	return hourStart(t).Format(KeyLayout)
}

// Up returns the instant's own slot key when it falls exactly on an hour,
// otherwise the key of the following hour. Day rollover is handled by
// time.Time arithmetic.
func Up(t time.Time) string {
	start := hourStart(t)
	if start.Equal(t) {
		return start.Format(KeyLayout)
	}
	return start.Add(time.Hour).Format(KeyLayout)
}

// FromDateHour reconstructs a slot key from a calendar date and an hour, for
// historical entry. The date must be "YYYY-MM-DD" and hour in [0,23].
func FromDateHour(date string, hour int) (string, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("hour %d out of range", hour)
	}
	return d.Add(time.Duration(hour) * time.Hour).Format(KeyLayout), nil
}

// Parse decodes a slot key back into a time. It accepts any timestamp in the
// key layout, aligned to the hour or not, so callers can decide what to do
// with stray records.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(KeyLayout, key, time.Local)
}
