package domain

import "strings"

// Preset describes a focus/break cadence the user can commit to.
type Preset struct {
	FocusMin       int
	ID             string
	LongBreakAfter int
	LongBreakMin   int
	Name           string
	ShortBreakMin  int
}

// Presets are the built-in cadences.
var Presets = []Preset{
	{FocusMin: 25, ID: "classic", LongBreakAfter: 4, LongBreakMin: 15, Name: "Classic", ShortBreakMin: 5},
	{FocusMin: 15, ID: "short", LongBreakAfter: 4, LongBreakMin: 10, Name: "Short", ShortBreakMin: 3},
	{FocusMin: 50, ID: "deep", LongBreakAfter: 2, LongBreakMin: 20, Name: "Deep Work", ShortBreakMin: 10},
	{FocusMin: 30, ID: "study", LongBreakAfter: 3, LongBreakMin: 15, Name: "Study Mode", ShortBreakMin: 5},
}

// PresetByName looks a preset up by id or display name, case-insensitively.
func PresetByName(name string) (Preset, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.ID == needle || strings.ToLower(p.Name) == needle {
			return p, true
		}
	}
	return Preset{}, false
}
