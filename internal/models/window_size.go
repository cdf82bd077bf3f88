package models

import (
	"fmt"
	"time"
)

// WindowSize is the width of the buckets used for the temporal distribution of a report.
type WindowSize string

const (
	WindowMinute WindowSize = "minute"
	WindowHour   WindowSize = "hour"
)

func (w WindowSize) Duration() time.Duration {
	switch w {
	case WindowMinute:
		return time.Minute
	case WindowHour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid WindowSize: %q", w))
	}
}

// Label returns the time-of-day bucket label for t, always computed in UTC.
// Hour windows produce "HH:00", minute windows produce "HH:MM".
func (w WindowSize) Label(t time.Time) string {
	utc := t.UTC().Truncate(w.Duration())
	return fmt.Sprintf("%02d:%02d", utc.Hour(), utc.Minute())
}
