package clock

import (
	"time"

	"climb/internal/ports"
)

var _ ports.Clock = (*SystemClock)(nil)

// SystemClock is the wall clock. An optional location pins day-rollover
// boundaries to a fixed timezone instead of the host's.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock in the host's local timezone.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// NewSystemClockIn creates a clock pinned to the given timezone name.
func NewSystemClockIn(name string) (*SystemClock, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &SystemClock{location: location}, nil
}

// Now returns the current time in the configured location.
func (c *SystemClock) Now() time.Time {
	if c.location != nil {
		return time.Now().In(c.location)
	}
	return time.Now()
}
