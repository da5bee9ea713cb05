package domain

// Streak multiplier bounds: 1.0 at zero streak, +0.1 per consecutive day,
// capped at 3.0.
const (
	BaseStreakMultiplier = 1.0
	MaxStreakMultiplier  = 3.0
	StreakMultiplierStep = 0.1
)

// PointsPerLevel is the cumulative team-point threshold per team level.
const PointsPerLevel = 5000

// DefaultMaxMembers caps team size unless overridden at creation.
const DefaultMaxMembers = 10

// TeamMember is one participant in a team.
// PomodoroSessionsCompleted is a lifetime counter, not a per-day flag.
type TeamMember struct {
	JoinedAt                  int64
	Name                      string
	PomodoroSessionsCompleted int
	Role                      string
	UserID                    string
}

// TeamStreak tracks consecutive all-member completion days for one team.
// StreakMultiplier is derived from CurrentStreak and never set directly.
type TeamStreak struct {
	AllMembersConsecutiveDays int
	CurrentStreak             int
	LastSessionDate           int64
	StreakMultiplier          float64
}

// RecomputeMultiplier re-derives the multiplier from the current streak,
// clamped to [1.0, 3.0].
func (s *TeamStreak) RecomputeMultiplier() {
	multiplier := BaseStreakMultiplier + StreakMultiplierStep*float64(s.CurrentStreak)
	if multiplier > MaxStreakMultiplier {
		multiplier = MaxStreakMultiplier
	}
	s.StreakMultiplier = multiplier
}

// TeamReward is unlocked when the team levels up.
type TeamReward struct {
	Description string
	ID          string
	Milestone   int
	Name        string
	Points      int
	UnlockedAt  int64
}

// Team is the aggregate mutated through the streak engine's single update
// operation.
type Team struct {
	CreatedAt  int64
	ID         string
	MaxMembers int
	Members    []TeamMember
	Name       string
	Rewards    []TeamReward
	Streak     TeamStreak
	TeamLevel  int
	TeamPoints int
	UpdatedAt  int64
}

// Member returns the member with the given user id, or nil.
func (t *Team) Member(userID string) *TeamMember {
	for i := range t.Members {
		if t.Members[i].UserID == userID {
			return &t.Members[i]
		}
	}
	return nil
}

// AllMembersActive reports whether every member has at least one completed
// session on record. This reads the lifetime counter, so a member stays
// "active" forever after their first completion.
func (t *Team) AllMembersActive() bool {
	if len(t.Members) == 0 {
		return false
	}
	for _, m := range t.Members {
		if m.PomodoroSessionsCompleted == 0 {
			return false
		}
	}
	return true
}

// LevelForPoints maps cumulative team points to a level (one level per 5000
// points, never below 1).
func LevelForPoints(points int) int {
	level := points/PointsPerLevel + 1
	if level < 1 {
		return 1
	}
	return level
}

// StreakMilestone is a named consecutive-day achievement.
type StreakMilestone struct {
	Bonus int
	Days  int
	Name  string
}

// StreakMilestones lists the achievements in ascending day order.
func StreakMilestones() []StreakMilestone {
	return []StreakMilestone{
		{Bonus: 250, Days: 3, Name: "On Fire"},
		{Bonus: 500, Days: 7, Name: "Week Warrior"},
		{Bonus: 1000, Days: 14, Name: "Fortnight Fighter"},
		{Bonus: 2000, Days: 30, Name: "Month Master"},
		{Bonus: 3000, Days: 60, Name: "Legendary Climber"},
		{Bonus: 5000, Days: 100, Name: "Unstoppable Force"},
	}
}

// MilestoneFor returns the milestone reached exactly at the given streak.
func MilestoneFor(streak int) (StreakMilestone, bool) {
	for _, m := range StreakMilestones() {
		if m.Days == streak {
			return m, true
		}
	}
	return StreakMilestone{}, false
}

// NextMilestoneAfter returns the first milestone beyond the given streak.
func NextMilestoneAfter(streak int) (StreakMilestone, bool) {
	for _, m := range StreakMilestones() {
		if m.Days > streak {
			return m, true
		}
	}
	return StreakMilestone{}, false
}
