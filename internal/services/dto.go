package services

import "climb/internal/domain"

// PomodoroResult is one finished focus session as reported by the tracker's
// consumer.
type PomodoroResult struct {
	CompletedSuccessfully  bool
	DistractionsCount      int
	FocusedMinutes         float64
	SessionDurationMinutes int
	TeamID                 string
	UserID                 string
}

// SessionRewardBreakdown explains how a session's points were scaled.
type SessionRewardBreakdown struct {
	BasePoints       int
	BonusPoints      int
	NewStreak        int
	StreakMultiplier float64
	TotalPoints      int
}

// StreakStatus is a display summary of a team's streak.
type StreakStatus struct {
	AllMembersConsecutiveDays int
	CurrentStreak             int
	DaysToNextMilestone       int
	EstimatedSessionBonus     int
	Multiplier                float64
	NextMilestone             *domain.StreakMilestone
	TeamLevel                 int
	TeamPoints                int
}
