package domain

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day (YYYY-MM-DD). Daily flags and usage
// totals are keyed by it: a new day produces fresh entries, old ones are
// never mutated. The timezone comes from whatever clock produced the
// time.Time, so rollover semantics live in one place.
type DayKey string

// NewDayKey derives the calendar-day key from t in t's location.
func NewDayKey(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// DaysBetween returns the whole calendar days from one key to another.
// Negative when to precedes from. Keys are always produced by NewDayKey, so
// a malformed key degrades to a zero-day difference.
func DaysBetween(from, to DayKey) int {
	a, errA := time.Parse(dayKeyLayout, string(from))
	b, errB := time.Parse(dayKeyLayout, string(to))
	if errA != nil || errB != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
