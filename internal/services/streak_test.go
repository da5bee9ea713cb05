package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climb/internal/domain"
)

var streakEpoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestStreak() (*Streak, *memoryTeamRepo, *fakeClock) {
	repo := newMemoryTeamRepo()
	clock := newFakeClock(streakEpoch)
	return NewStreak(repo, clock), repo, clock
}

// seedTeam stores a team with the given member lifetime counters, streak and
// last-session offset from the fake clock.
func seedTeam(repo *memoryTeamRepo, clock *fakeClock, streakDays int, lastSessionAgo time.Duration, counters ...int) *domain.Team {
	team := &domain.Team{
		ID:         "team-1",
		MaxMembers: domain.DefaultMaxMembers,
		Name:       "The Climbers",
		Streak: domain.TeamStreak{
			AllMembersConsecutiveDays: streakDays,
			CurrentStreak:             streakDays,
			LastSessionDate:           clock.Now().Add(-lastSessionAgo).UnixMilli(),
		},
		TeamLevel: 1,
	}
	team.Streak.RecomputeMultiplier()
	for i, count := range counters {
		member := domain.TeamMember{
			Name:                      string(rune('A' + i)),
			PomodoroSessionsCompleted: count,
			Role:                      "member",
			UserID:                    string(rune('a' + i)),
		}
		if i == 0 {
			member.Role = "owner"
		}
		team.Members = append(team.Members, member)
	}
	repo.teams[team.ID] = team
	return team
}

func TestCreateTeam(t *testing.T) {
	streak, repo, _ := newTestStreak()

	team, err := streak.CreateTeam(context.Background(), "The Climbers", "alice", "Alice")
	require.NoError(t, err)

	assert.NotEmpty(t, team.ID)
	assert.Equal(t, 1, team.TeamLevel)
	assert.Equal(t, domain.DefaultMaxMembers, team.MaxMembers)
	assert.Equal(t, domain.BaseStreakMultiplier, team.Streak.StreakMultiplier)
	require.Len(t, team.Members, 1)
	assert.Equal(t, "owner", team.Members[0].Role)
	assert.Contains(t, repo.teams, team.ID)
}

func TestAddMember(t *testing.T) {
	streak, _, _ := newTestStreak()
	ctx := context.Background()

	team, err := streak.CreateTeam(ctx, "The Climbers", "alice", "Alice")
	require.NoError(t, err)

	team, err = streak.AddMember(ctx, team.ID, "bob", "Bob")
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)

	_, err = streak.AddMember(ctx, team.ID, "bob", "Bob")
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)

	_, err = streak.AddMember(ctx, "missing", "carol", "Carol")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestAddMember_TeamFull(t *testing.T) {
	streak, repo, clock := newTestStreak()
	team := seedTeam(repo, clock, 0, 0, 1, 1)
	team.MaxMembers = 2
	repo.teams[team.ID] = team

	_, err := streak.AddMember(context.Background(), team.ID, "carol", "Carol")
	assert.ErrorIs(t, err, domain.ErrTeamFull)
}

func TestRecordSessionCompletion_NextDayAllActiveIncrements(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10, 12)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 7, result.CurrentStreak)
	assert.Equal(t, 7, result.AllMembersConsecutiveDays)
	assert.InDelta(t, 1.7, result.StreakMultiplier, 1e-9)
	assert.Equal(t, clock.Now().UnixMilli(), result.LastSessionDate)

	saved := repo.teams["team-1"]
	assert.Equal(t, 11, saved.Member("a").PomodoroSessionsCompleted)
	assert.Equal(t, 7, saved.Streak.CurrentStreak)
}

func TestRecordSessionCompletion_GapResetsStreak(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 14, 72*time.Hour, 10, 12)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.CurrentStreak)
	assert.Equal(t, 0, result.AllMembersConsecutiveDays)
	assert.InDelta(t, 1.1, result.StreakMultiplier, 1e-9)
}

func TestRecordSessionCompletion_SameDayKeepsCounters(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, time.Hour, 10, 12)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 6, result.CurrentStreak)
	assert.Equal(t, 6, result.AllMembersConsecutiveDays)
	// Multiplier still re-derives and the date still moves
	assert.InDelta(t, 1.6, result.StreakMultiplier, 1e-9)
	assert.Equal(t, clock.Now().UnixMilli(), result.LastSessionDate)
}

func TestRecordSessionCompletion_InactiveMemberBlocksIncrement(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10, 0)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	// Next day but one member never completed anything: no increment, no reset
	assert.Equal(t, 6, result.CurrentStreak)
	assert.Equal(t, 6, result.AllMembersConsecutiveDays)
}

// A member with lifetime completions counts as active even with no session
// today. That keeps long-gone members propping the streak up; intentional
// for now.
func TestRecordSessionCompletion_MemberActiveLifetimeNotToday(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10, 1)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 7, result.CurrentStreak)
}

func TestRecordSessionCompletion_UnknownTeamOrMemberIsNeutral(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10)

	result, err := streak.RecordSessionCompletion(context.Background(), "missing", "a")
	assert.NoError(t, err)
	assert.Nil(t, result)

	result, err = streak.RecordSessionCompletion(context.Background(), "team-1", "stranger")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRecordSessionCompletion_MultiplierCapped(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 25, 24*time.Hour, 10)

	result, err := streak.RecordSessionCompletion(context.Background(), "team-1", "a")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 26, result.CurrentStreak)
	assert.Equal(t, domain.MaxStreakMultiplier, result.StreakMultiplier)
}

func TestAwardBonus_ScalesByMultiplier(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, time.Hour, 10)

	total, err := streak.AwardBonus(context.Background(), "team-1", 100)
	require.NoError(t, err)

	// x1.6 multiplier: 100 base + 60 bonus
	assert.Equal(t, 160, total)
	assert.Equal(t, 160, repo.teams["team-1"].TeamPoints)
}

func TestAwardBonus_UnknownTeamReturnsBase(t *testing.T) {
	streak, _, _ := newTestStreak()

	total, err := streak.AwardBonus(context.Background(), "missing", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}

func TestAwardBonus_LevelUpUnlocksReward(t *testing.T) {
	streak, repo, clock := newTestStreak()
	team := seedTeam(repo, clock, 0, time.Hour, 10)
	team.TeamPoints = 4_950
	repo.teams[team.ID] = team

	total, err := streak.AwardBonus(context.Background(), "team-1", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, total)

	saved := repo.teams["team-1"]
	assert.Equal(t, 5_050, saved.TeamPoints)
	assert.Equal(t, 2, saved.TeamLevel)
	require.Len(t, saved.Rewards, 1)
	assert.Equal(t, "Team Level 2 Unlocked!", saved.Rewards[0].Name)
	assert.Equal(t, 500, saved.Rewards[0].Points)
}

func TestRecordPomodoroResult_FullPipeline(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10, 12)

	breakdown, err := streak.RecordPomodoroResult(context.Background(), PomodoroResult{
		CompletedSuccessfully: true,
		FocusedMinutes:        24.6,
		TeamID:                "team-1",
		UserID:                "a",
	})
	require.NoError(t, err)
	require.NotNil(t, breakdown)

	// Streak moves to 7 first, then the bonus uses the new x1.7
	assert.Equal(t, 24, breakdown.BasePoints)
	assert.Equal(t, 16, breakdown.BonusPoints)
	assert.Equal(t, 40, breakdown.TotalPoints)
	assert.Equal(t, 7, breakdown.NewStreak)
	assert.InDelta(t, 1.7, breakdown.StreakMultiplier, 1e-9)
}

func TestRecordPomodoroResult_IncompleteSessionIgnored(t *testing.T) {
	streak, repo, clock := newTestStreak()
	seedTeam(repo, clock, 6, 24*time.Hour, 10)

	breakdown, err := streak.RecordPomodoroResult(context.Background(), PomodoroResult{
		CompletedSuccessfully: false,
		FocusedMinutes:        25,
		TeamID:                "team-1",
		UserID:                "a",
	})
	require.NoError(t, err)
	assert.Nil(t, breakdown)
	assert.Equal(t, 6, repo.teams["team-1"].Streak.CurrentStreak)
}

func TestStatus(t *testing.T) {
	streak, repo, clock := newTestStreak()
	team := seedTeam(repo, clock, 5, time.Hour, 10)
	team.TeamPoints = 1_200
	repo.teams[team.ID] = team

	status, err := streak.Status(context.Background(), "team-1")
	require.NoError(t, err)

	assert.Equal(t, 5, status.CurrentStreak)
	assert.InDelta(t, 1.5, status.Multiplier, 1e-9)
	assert.Equal(t, 1_200, status.TeamPoints)
	// 25 * 0.5 = 12.5, floored
	assert.Equal(t, 12, status.EstimatedSessionBonus)
	require.NotNil(t, status.NextMilestone)
	assert.Equal(t, "Week Warrior", status.NextMilestone.Name)
	assert.Equal(t, 2, status.DaysToNextMilestone)
}
