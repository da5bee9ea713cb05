package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamStreak_RecomputeMultiplier(t *testing.T) {
	tests := []struct {
		expected float64
		name     string
		streak   int
	}{
		{name: "zero streak", streak: 0, expected: 1.0},
		{name: "one day", streak: 1, expected: 1.1},
		{name: "six days", streak: 6, expected: 1.6},
		{name: "twenty days hits cap", streak: 20, expected: 3.0},
		{name: "beyond cap stays capped", streak: 100, expected: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak := TeamStreak{CurrentStreak: tt.streak}
			streak.RecomputeMultiplier()
			assert.InDelta(t, tt.expected, streak.StreakMultiplier, 1e-9)
		})
	}
}

func TestTeam_AllMembersActive(t *testing.T) {
	empty := Team{}
	assert.False(t, empty.AllMembersActive())

	mixed := Team{Members: []TeamMember{
		{PomodoroSessionsCompleted: 5, UserID: "a"},
		{PomodoroSessionsCompleted: 0, UserID: "b"},
	}}
	assert.False(t, mixed.AllMembersActive())

	active := Team{Members: []TeamMember{
		{PomodoroSessionsCompleted: 5, UserID: "a"},
		{PomodoroSessionsCompleted: 1, UserID: "b"},
	}}
	assert.True(t, active.AllMembersActive())
}

func TestTeam_Member(t *testing.T) {
	team := Team{Members: []TeamMember{{UserID: "a"}, {UserID: "b"}}}

	member := team.Member("b")
	require.NotNil(t, member)

	// The pointer reaches into the slice so callers can mutate in place
	member.PomodoroSessionsCompleted++
	assert.Equal(t, 1, team.Members[1].PomodoroSessionsCompleted)

	assert.Nil(t, team.Member("stranger"))
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(4_999))
	assert.Equal(t, 2, LevelForPoints(5_000))
	assert.Equal(t, 3, LevelForPoints(12_345))
	assert.Equal(t, 1, LevelForPoints(-100))
}

func TestStreakMilestones(t *testing.T) {
	milestone, ok := MilestoneFor(7)
	require.True(t, ok)
	assert.Equal(t, "Week Warrior", milestone.Name)
	assert.Equal(t, 500, milestone.Bonus)

	_, ok = MilestoneFor(8)
	assert.False(t, ok)

	next, ok := NextMilestoneAfter(7)
	require.True(t, ok)
	assert.Equal(t, 14, next.Days)

	_, ok = NextMilestoneAfter(100)
	assert.False(t, ok)

	next, ok = NextMilestoneAfter(0)
	require.True(t, ok)
	assert.Equal(t, 3, next.Days)
}
