package ports

import "time"

// Clock is the injectable time source. All timing and day-rollover logic
// goes through it so tests can simulate elapsed time deterministically.
type Clock interface {
	Now() time.Time
}
