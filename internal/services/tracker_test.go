package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climb/internal/domain"
)

var trackerEpoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestTracker() (*Tracker, *memoryFocusRepo, *recordingNotifier, *fakeClock) {
	repo := &memoryFocusRepo{}
	notifier := &recordingNotifier{}
	clock := newFakeClock(trackerEpoch)
	return NewTracker(repo, notifier, clock), repo, notifier, clock
}

func TestTracker_SingleExcursionSession(t *testing.T) {
	tracker, repo, notifier, clock := newTestTracker()
	start := clock.Now().UnixMilli()

	session := tracker.Start("alice", "pomo-1", "Classic")
	require.NotNil(t, session)
	assert.Equal(t, start, session.StartTime)

	// Leave at minute 5, return at minute 6
	clock.Advance(5 * time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	clock.Advance(1 * time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	// End at minute 25
	clock.Advance(19 * time.Minute)
	record := tracker.End(context.Background(), "alice", 24)

	require.NotNil(t, record)
	assert.Equal(t, int64(1_500_000), record.TotalDuration)
	assert.Equal(t, int64(1_440_000), record.TotalFocusTime)
	assert.Equal(t, 1, record.ExitCount)
	require.Len(t, record.AppLeaveTimes, 1)
	assert.Equal(t, start+300_000, record.AppLeaveTimes[0].LeftAt)
	assert.Equal(t, start+360_000, record.AppLeaveTimes[0].ReturnedAt)
	assert.True(t, record.Completed)
	assert.Equal(t, 24, record.PointsEarned)

	// Away time plus focus time accounts for the full duration
	assert.Equal(t, record.TotalDuration, record.TotalFocusTime+record.TimeAway())

	require.Len(t, repo.saved, 1)
	assert.Equal(t, record.ID, repo.saved[0].ID)
	assert.Len(t, notifier.completions, 1)
}

func TestTracker_ReturnEmitsWarningWithTimeAway(t *testing.T) {
	tracker, _, notifier, clock := newTestTracker()
	tracker.Start("alice", "pomo-1", "Classic")

	clock.Advance(2 * time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	clock.Advance(90 * time.Second)
	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	require.Len(t, notifier.warnings, 1)
	assert.Equal(t, "1 Classic 1m 30s", notifier.warnings[0])
}

func TestTracker_DoubleStartKeepsExistingSession(t *testing.T) {
	tracker, _, _, clock := newTestTracker()

	first := tracker.Start("alice", "pomo-1", "Classic")
	clock.Advance(3 * time.Minute)
	second := tracker.Start("alice", "pomo-2", "Deep Work")

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Classic", second.PresetName)
}

func TestTracker_RepeatedBackgroundCountsOnce(t *testing.T) {
	tracker, _, _, clock := newTestTracker()
	tracker.Start("alice", "pomo-1", "Classic")

	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	clock.Advance(30 * time.Second)
	tracker.OnAppStateChanged("alice", domain.AppStateInactive)
	clock.Advance(30 * time.Second)
	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	current := tracker.Current("alice")
	require.NotNil(t, current)
	assert.Equal(t, 1, current.ExitCount)
	assert.Len(t, current.AppLeaveTimes, 1)
	assert.Equal(t, int64(60_000), current.TimeAway())
}

func TestTracker_ActiveWithoutExcursionIsNoOp(t *testing.T) {
	tracker, _, notifier, _ := newTestTracker()
	tracker.Start("alice", "pomo-1", "Classic")

	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	current := tracker.Current("alice")
	require.NotNil(t, current)
	assert.Empty(t, current.AppLeaveTimes)
	assert.Empty(t, notifier.warnings)
}

func TestTracker_OpenExcursionAtEndIsDropped(t *testing.T) {
	tracker, _, _, clock := newTestTracker()
	tracker.Start("alice", "pomo-1", "Classic")

	clock.Advance(10 * time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	clock.Advance(5 * time.Minute)
	record := tracker.End(context.Background(), "alice", 0)

	require.NotNil(t, record)
	// The exit is counted but the unclosed interval never lands
	assert.Equal(t, 1, record.ExitCount)
	assert.Empty(t, record.AppLeaveTimes)
	assert.Equal(t, record.TotalDuration, record.TotalFocusTime)
}

func TestTracker_EndWithoutSession(t *testing.T) {
	tracker, repo, _, _ := newTestTracker()

	record := tracker.End(context.Background(), "alice", 10)

	assert.Nil(t, record)
	assert.Empty(t, repo.saved)
}

func TestTracker_AbortDiscardsSession(t *testing.T) {
	tracker, repo, _, clock := newTestTracker()
	tracker.Start("alice", "pomo-1", "Classic")
	clock.Advance(10 * time.Minute)

	tracker.Abort("alice")

	assert.False(t, tracker.IsActive("alice"))
	assert.Empty(t, repo.saved)
	assert.Nil(t, tracker.End(context.Background(), "alice", 0))
}

func TestTracker_EventsWithoutSessionAreIgnored(t *testing.T) {
	tracker, _, notifier, _ := newTestTracker()

	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	assert.False(t, tracker.IsActive("alice"))
	assert.Empty(t, notifier.warnings)
}

func TestTracker_SaveFailureStillReturnsRecord(t *testing.T) {
	repo := &memoryFocusRepo{saveErr: assert.AnError}
	clock := newFakeClock(trackerEpoch)
	tracker := NewTracker(repo, &recordingNotifier{}, clock)

	tracker.Start("alice", "pomo-1", "Classic")
	clock.Advance(25 * time.Minute)
	record := tracker.End(context.Background(), "alice", 25)

	require.NotNil(t, record)
	assert.True(t, record.Completed)
	assert.False(t, tracker.IsActive("alice"))
}

func TestTracker_UsersAreIndependent(t *testing.T) {
	tracker, _, _, clock := newTestTracker()

	tracker.Start("alice", "pomo-1", "Classic")
	tracker.Start("bob", "pomo-2", "Short")

	clock.Advance(time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateBackground)
	clock.Advance(time.Minute)
	tracker.OnAppStateChanged("alice", domain.AppStateActive)

	bob := tracker.Current("bob")
	require.NotNil(t, bob)
	assert.Zero(t, bob.ExitCount)

	alice := tracker.Current("alice")
	require.NotNil(t, alice)
	assert.Equal(t, 1, alice.ExitCount)
}

func TestTracker_Stats(t *testing.T) {
	tracker, _, _, clock := newTestTracker()
	ctx := context.Background()

	tracker.Start("alice", "pomo-1", "Classic")
	clock.Advance(25 * time.Minute)
	tracker.End(ctx, "alice", 25)

	tracker.Start("alice", "pomo-2", "Short")
	clock.Advance(15 * time.Minute)
	tracker.End(ctx, "alice", 15)

	stats, err := tracker.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, int64(40*60_000), stats.TotalFocusTime)
	assert.Equal(t, 40, stats.TotalPointsEarned)
	assert.Equal(t, 0.0, stats.AverageExitCount)
}
