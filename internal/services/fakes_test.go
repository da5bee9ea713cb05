package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"climb/internal/domain"
)

// fakeClock is a manually advanced time source so tests can simulate elapsed
// time deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryFocusRepo keeps saved sessions in memory.
type memoryFocusRepo struct {
	saveErr error
	saved   []domain.FocusSession
}

func (r *memoryFocusRepo) SaveSession(_ context.Context, session domain.FocusSession) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, session)
	return nil
}

func (r *memoryFocusRepo) ListSessions(context.Context) ([]domain.FocusSession, error) {
	return r.saved, nil
}

func (r *memoryFocusRepo) ListSessionsRange(_ context.Context, fromMillis, toMillis int64) ([]domain.FocusSession, error) {
	var out []domain.FocusSession
	for _, s := range r.saved {
		if s.StartTime >= fromMillis && s.StartTime <= toMillis {
			out = append(out, s)
		}
	}
	return out, nil
}

// memoryUsageRepo keys entries by (day, app).
type memoryUsageRepo struct {
	entries map[string]domain.UsageEntry
	getErr  error
	putErr  error
}

func newMemoryUsageRepo() *memoryUsageRepo {
	return &memoryUsageRepo{entries: make(map[string]domain.UsageEntry)}
}

func usageKey(day domain.DayKey, appID string) string {
	return string(day) + "/" + appID
}

func (r *memoryUsageRepo) GetUsage(_ context.Context, day domain.DayKey, appID string) (*domain.UsageEntry, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	entry, ok := r.entries[usageKey(day, appID)]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *memoryUsageRepo) PutUsage(_ context.Context, entry domain.UsageEntry) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.entries[usageKey(entry.Day, entry.AppID)] = entry
	return nil
}

// memoryTeamRepo stores deep-copied team snapshots by id, so a mutation the
// service forgets to save never leaks into the stored state.
type memoryTeamRepo struct {
	saveErr error
	teams   map[string]*domain.Team
}

func newMemoryTeamRepo() *memoryTeamRepo {
	return &memoryTeamRepo{teams: make(map[string]*domain.Team)}
}

func copyTeam(team *domain.Team) *domain.Team {
	clone := *team
	clone.Members = append([]domain.TeamMember(nil), team.Members...)
	clone.Rewards = append([]domain.TeamReward(nil), team.Rewards...)
	return &clone
}

func (r *memoryTeamRepo) GetTeam(_ context.Context, teamID string) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return copyTeam(team), nil
}

func (r *memoryTeamRepo) ListTeams(context.Context) ([]domain.Team, error) {
	out := make([]domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		out = append(out, *copyTeam(team))
	}
	return out, nil
}

func (r *memoryTeamRepo) SaveTeam(_ context.Context, team *domain.Team) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.teams[team.ID] = copyTeam(team)
	return nil
}

// recordingNotifier captures emitted signals for assertions.
type recordingNotifier struct {
	completions []string
	nudges      []string
	penalties   []int
	warnings    []string
}

func (n *recordingNotifier) FocusWarning(exitCount int, presetName, timeAway string) {
	n.warnings = append(n.warnings, fmt.Sprintf("%d %s %s", exitCount, presetName, timeAway))
}

func (n *recordingNotifier) LimitNudge(appID string, usedMinutes, limitMinutes int) {
	n.nudges = append(n.nudges, fmt.Sprintf("%s %d/%d", appID, usedMinutes, limitMinutes))
}

func (n *recordingNotifier) PenaltyAlert(pointsLost int) {
	n.penalties = append(n.penalties, pointsLost)
}

func (n *recordingNotifier) SessionComplete(presetName string, pointsEarned int) {
	n.completions = append(n.completions, fmt.Sprintf("%s %d", presetName, pointsEarned))
}
