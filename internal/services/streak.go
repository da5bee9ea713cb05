package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/ports"
)

// Streak tracks team-level consecutive-day completion and turns it into a
// bounded reward multiplier. All updates are load snapshot, mutate, save
// snapshot against the team repository.
type Streak struct {
	clock ports.Clock
	repo  ports.TeamRepository
}

// NewStreak creates a new Streak engine
func NewStreak(repo ports.TeamRepository, clock ports.Clock) *Streak {
	return &Streak{clock: clock, repo: repo}
}

// CreateTeam creates a team owned by the given user.
func (s *Streak) CreateTeam(ctx context.Context, name, ownerID, ownerName string) (*domain.Team, error) {
	now := s.clock.Now().UnixMilli()
	team := &domain.Team{
		CreatedAt:  now,
		ID:         uuid.New().String(),
		MaxMembers: domain.DefaultMaxMembers,
		Members: []domain.TeamMember{
			{JoinedAt: now, Name: ownerName, Role: "owner", UserID: ownerID},
		},
		Name:      name,
		Streak:    domain.TeamStreak{LastSessionDate: now, StreakMultiplier: domain.BaseStreakMultiplier},
		TeamLevel: 1,
		UpdatedAt: now,
	}

	if err := s.repo.SaveTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	logging.Logger.Info("Team created", "team", team.ID, "name", name, "owner", ownerID)
	return team, nil
}

// AddMember joins a user to the team.
func (s *Streak) AddMember(ctx context.Context, teamID, userID, name string) (*domain.Team, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.Member(userID) != nil {
		return nil, domain.ErrAlreadyMember
	}
	if team.MaxMembers > 0 && len(team.Members) >= team.MaxMembers {
		return nil, domain.ErrTeamFull
	}

	now := s.clock.Now().UnixMilli()
	team.Members = append(team.Members, domain.TeamMember{
		JoinedAt: now,
		Name:     name,
		Role:     "member",
		UserID:   userID,
	})
	team.UpdatedAt = now

	if err := s.repo.SaveTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}
	return team, nil
}

// RecordSessionCompletion registers one completed session for the member and
// advances the team streak:
//   - exactly one calendar day since the last session AND every member
//     active: streak and consecutive-days both increment
//   - more than one day: streak resets to 1, consecutive-days to 0
//   - same day: counters unchanged (repeat completions don't double-count)
//
// The multiplier is re-derived and lastSessionDate moves to today in every
// case. Unknown team or member yields (nil, nil): missing ids are a neutral
// outcome, not a failure.
//
// The "every member active" check reads each member's lifetime completion
// counter, so any member with one career session counts as active from then
// on. Kept as-is; see DESIGN.md.
func (s *Streak) RecordSessionCompletion(ctx context.Context, teamID, userID string) (*domain.TeamStreak, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			logging.Logger.Warn("Session completion for unknown team", "team", teamID)
			return nil, nil
		}
		return nil, err
	}

	member := team.Member(userID)
	if member == nil {
		logging.Logger.Warn("Session completion for unknown member", "team", teamID, "user", userID)
		return nil, nil
	}

	member.PomodoroSessionsCompleted++

	today := s.clock.Now()
	lastDay := domain.NewDayKey(time.UnixMilli(team.Streak.LastSessionDate).In(today.Location()))
	daysDiff := domain.DaysBetween(lastDay, domain.NewDayKey(today))

	allMembersActive := team.AllMembersActive()

	switch {
	case daysDiff == 1 && allMembersActive:
		team.Streak.CurrentStreak++
		team.Streak.AllMembersConsecutiveDays++
	case daysDiff > 1:
		team.Streak.CurrentStreak = 1
		team.Streak.AllMembersConsecutiveDays = 0
	}

	team.Streak.RecomputeMultiplier()
	team.Streak.LastSessionDate = today.UnixMilli()
	team.UpdatedAt = today.UnixMilli()

	if err := s.repo.SaveTeam(ctx, team); err != nil {
		// Best effort: the computed streak is still returned
		logging.Logger.Error("Failed to save team streak", "error", err, "team", teamID)
	}

	logging.Logger.Info("Team streak updated",
		"team", teamID,
		"user", userID,
		"streak", team.Streak.CurrentStreak,
		"multiplier", team.Streak.StreakMultiplier,
		"days_diff", daysDiff)

	streak := team.Streak
	return &streak, nil
}

// AwardBonus scales basePoints by the streak multiplier, adds the total to
// the team score and levels the team up every 5000 cumulative points,
// unlocking a reward. Returns the total points awarded. An unknown team is
// neutral: basePoints come back unscaled.
func (s *Streak) AwardBonus(ctx context.Context, teamID string, basePoints int) (int, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return basePoints, nil
		}
		return basePoints, err
	}

	bonus := int(math.Floor(float64(basePoints) * (team.Streak.StreakMultiplier - 1.0)))
	total := basePoints + bonus
	team.TeamPoints += total

	newLevel := domain.LevelForPoints(team.TeamPoints)
	if newLevel > team.TeamLevel {
		team.TeamLevel = newLevel
		team.Rewards = append(team.Rewards, domain.TeamReward{
			Description: fmt.Sprintf("Reached team level %d", newLevel),
			ID:          uuid.New().String(),
			Milestone:   newLevel,
			Name:        fmt.Sprintf("Team Level %d Unlocked!", newLevel),
			Points:      500,
			UnlockedAt:  s.clock.Now().UnixMilli(),
		})
		logging.Logger.Info("Team leveled up", "team", teamID, "level", newLevel)
	}
	team.UpdatedAt = s.clock.Now().UnixMilli()

	if err := s.repo.SaveTeam(ctx, team); err != nil {
		logging.Logger.Error("Failed to save team points", "error", err, "team", teamID)
	}

	logging.Logger.Debug("Streak bonus awarded",
		"team", teamID,
		"base", basePoints,
		"bonus", bonus,
		"multiplier", team.Streak.StreakMultiplier)
	return total, nil
}

// RecordPomodoroResult is the completion pipeline: streak update, then bonus
// awarding from the focused minutes. Returns nil for sessions that did not
// complete successfully or when the team/member is unknown.
func (s *Streak) RecordPomodoroResult(ctx context.Context, result PomodoroResult) (*SessionRewardBreakdown, error) {
	if !result.CompletedSuccessfully {
		return nil, nil
	}

	streak, err := s.RecordSessionCompletion(ctx, result.TeamID, result.UserID)
	if err != nil || streak == nil {
		return nil, err
	}

	basePoints := int(math.Floor(result.FocusedMinutes))
	total, err := s.AwardBonus(ctx, result.TeamID, basePoints)
	if err != nil {
		return nil, err
	}

	return &SessionRewardBreakdown{
		BasePoints:       basePoints,
		BonusPoints:      total - basePoints,
		NewStreak:        streak.CurrentStreak,
		StreakMultiplier: streak.StreakMultiplier,
		TotalPoints:      total,
	}, nil
}

// Status summarizes the team's streak for display, including the estimated
// bonus for a standard 25-minute session and the next milestone.
func (s *Streak) Status(ctx context.Context, teamID string) (*StreakStatus, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	const standardSessionMinutes = 25
	estimatedBonus := int(math.Floor(standardSessionMinutes * (team.Streak.StreakMultiplier - 1.0)))

	status := &StreakStatus{
		AllMembersConsecutiveDays: team.Streak.AllMembersConsecutiveDays,
		CurrentStreak:             team.Streak.CurrentStreak,
		EstimatedSessionBonus:     estimatedBonus,
		Multiplier:                team.Streak.StreakMultiplier,
		TeamLevel:                 team.TeamLevel,
		TeamPoints:                team.TeamPoints,
	}

	if next, ok := domain.NextMilestoneAfter(team.Streak.CurrentStreak); ok {
		status.DaysToNextMilestone = next.Days - team.Streak.CurrentStreak
		status.NextMilestone = &next
	}
	return status, nil
}
