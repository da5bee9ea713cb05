package domain

import "fmt"

// AppState represents a foreground/background transition delivered by the
// platform event source.
type AppState string

const (
	AppStateActive     AppState = "active"
	AppStateBackground AppState = "background"
	AppStateInactive   AppState = "inactive"
)

// LeaveInterval is one closed background excursion during an active focus
// session. Times are epoch milliseconds.
type LeaveInterval struct {
	LeftAt     int64 `json:"leftAt"`
	ReturnedAt int64 `json:"returnedAt"`
}

// Duration returns the excursion length in milliseconds.
func (l LeaveInterval) Duration() int64 {
	return l.ReturnedAt - l.LeftAt
}

// FocusSession is one attempt at sustained focus (domain entity).
// All times are epoch milliseconds, matching the persisted record shape.
//
// Invariant: len(AppLeaveTimes) <= ExitCount. A trailing excursion the user
// never returned from is counted in ExitCount but never appears in
// AppLeaveTimes.
type FocusSession struct {
	AppLeaveTimes  []LeaveInterval
	Completed      bool
	EndTime        int64
	ExitCount      int
	ID             string
	PointsEarned   int
	PresetName     string
	SessionID      string
	StartTime      int64
	TotalDuration  int64
	TotalFocusTime int64
	UserID         string
}

// TimeAway sums all closed excursions in milliseconds. An excursion that is
// still open contributes nothing until the user returns.
func (s *FocusSession) TimeAway() int64 {
	var total int64
	for _, leave := range s.AppLeaveTimes {
		total += leave.Duration()
	}
	return total
}

// Clone returns a deep copy so callers can inspect a session without sharing
// the tracker's mutable slice.
func (s *FocusSession) Clone() *FocusSession {
	clone := *s
	clone.AppLeaveTimes = make([]LeaveInterval, len(s.AppLeaveTimes))
	copy(clone.AppLeaveTimes, s.AppLeaveTimes)
	return &clone
}

// FormatTimeAway renders a millisecond duration as "3m 20s" or "45s" for the
// notification collaborator.
func FormatTimeAway(millis int64) string {
	seconds := millis / 1000
	minutes := seconds / 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// SessionStats aggregates persisted focus sessions.
type SessionStats struct {
	AverageExitCount  float64
	AverageFocusTime  float64
	TotalDuration     int64
	TotalFocusTime    int64
	TotalPointsEarned int
	TotalSessions     int
}

// ComputeSessionStats aggregates completed sessions into totals and averages.
func ComputeSessionStats(sessions []FocusSession) SessionStats {
	if len(sessions) == 0 {
		return SessionStats{}
	}

	var stats SessionStats
	var totalExits int
	for _, s := range sessions {
		stats.TotalFocusTime += s.TotalFocusTime
		stats.TotalDuration += s.TotalDuration
		stats.TotalPointsEarned += s.PointsEarned
		totalExits += s.ExitCount
	}
	stats.TotalSessions = len(sessions)
	stats.AverageFocusTime = float64(stats.TotalFocusTime) / float64(len(sessions))
	stats.AverageExitCount = float64(totalExits) / float64(len(sessions))
	return stats
}
