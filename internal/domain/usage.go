package domain

import "strings"

// UsageEntry accumulates foreground time spent in one external app on one
// calendar day. AccumulatedMillis only ever grows within a day; the nudge
// and penalty flags are independent once-per-day gates.
type UsageEntry struct {
	AccumulatedMillis int64
	AppID             string
	Day               DayKey
	NudgeShown        bool
	PenaltyApplied    bool
}

// Minutes returns the accumulated usage in whole minutes.
func (e *UsageEntry) Minutes() int {
	return int(e.AccumulatedMillis / 60000)
}

// PenaltyResult reports the outcome of a daily penalty application.
type PenaltyResult struct {
	Applied    bool
	PointsLost int
}

// NormalizeAppID canonicalizes an app identifier for ledger keys.
func NormalizeAppID(appID string) string {
	return strings.ToLower(strings.TrimSpace(appID))
}
