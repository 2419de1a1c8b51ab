// Package clock provides the time source used by request handlers so tests can
// pin the reported timestamp.
package clock

import "time"

// ISO8601Millis is the UTC layout reported to clients, e.g. 2024-05-01T12:30:00.000Z.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// TimeProvider provides time-related functionality that can be mocked for testing.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
}

// RealTimeProvider implements TimeProvider using real system time.
type RealTimeProvider struct{}

// Now returns the current system time.
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider implements TimeProvider with a fixed time for testing.
type FixedTimeProvider struct {
	fixedTime time.Time
}

// NewFixedTimeProvider creates a new FixedTimeProvider with the given time.
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{fixedTime: t}
}

// Now returns the fixed time.
func (f *FixedTimeProvider) Now() time.Time {
	return f.fixedTime
}

// Format renders t in UTC using ISO8601Millis.
func Format(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}
