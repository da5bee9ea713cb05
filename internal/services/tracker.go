package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/ports"
)

// activeSlot holds one user's in-flight focus session. lastBackground is the
// open excursion's start (epoch millis), or 0 when the user is in-app; at
// most one excursion is ever open.
type activeSlot struct {
	lastBackground int64
	session        *domain.FocusSession
}

// Tracker is the focus session state machine. Each user owns exactly one
// slot; a second Start is rejected, never silently overwritten. All state
// transitions happen in reaction to discrete events, serialized by the
// mutex so the at-most-one-open-excursion invariant holds even when event
// delivery is concurrent.
type Tracker struct {
	clock    ports.Clock
	mu       sync.Mutex
	notifier ports.Notifier
	repo     ports.FocusSessionRepository
	slots    map[string]*activeSlot
}

// NewTracker creates a new Tracker
func NewTracker(repo ports.FocusSessionRepository, notifier ports.Notifier, clock ports.Clock) *Tracker {
	return &Tracker{
		clock:    clock,
		notifier: notifier,
		repo:     repo,
		slots:    make(map[string]*activeSlot),
	}
}

// Start begins a focus session for the user. When a session is already
// active this is a no-op that returns the existing session.
func (t *Tracker) Start(userID, sessionID, presetName string) *domain.FocusSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slot, ok := t.slots[userID]; ok {
		logging.Logger.Warn("Focus session already active, ignoring start",
			"user", userID,
			"active_id", slot.session.ID)
		return slot.session.Clone()
	}

	session := &domain.FocusSession{
		AppLeaveTimes: []domain.LeaveInterval{},
		ID:            "focus_" + uuid.New().String(),
		PresetName:    presetName,
		SessionID:     sessionID,
		StartTime:     t.clock.Now().UnixMilli(),
		UserID:        userID,
	}
	t.slots[userID] = &activeSlot{session: session}

	logging.Logger.Info("Focus session started",
		"user", userID,
		"id", session.ID,
		"preset", presetName)
	return session.Clone()
}

// OnAppStateChanged applies one foreground/background transition to the
// user's active session. Without an active session it does nothing. Events
// must arrive in emission order; a repeated background signal while an
// excursion is open is ignored so it never double-counts.
func (t *Tracker) OnAppStateChanged(userID string, state domain.AppState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.slots[userID]
	if !ok {
		return
	}

	switch state {
	case domain.AppStateBackground, domain.AppStateInactive:
		if slot.lastBackground != 0 {
			return
		}
		slot.lastBackground = t.clock.Now().UnixMilli()
		slot.session.ExitCount++
		logging.Logger.Debug("User left during focus session",
			"user", userID,
			"exit_count", slot.session.ExitCount)

	case domain.AppStateActive:
		if slot.lastBackground == 0 {
			return
		}
		leave := domain.LeaveInterval{
			LeftAt:     slot.lastBackground,
			ReturnedAt: t.clock.Now().UnixMilli(),
		}
		slot.session.AppLeaveTimes = append(slot.session.AppLeaveTimes, leave)
		slot.lastBackground = 0

		timeAway := domain.FormatTimeAway(slot.session.TimeAway())
		logging.Logger.Debug("User returned during focus session",
			"user", userID,
			"exit_count", slot.session.ExitCount,
			"time_away", timeAway)
		t.notifier.FocusWarning(slot.session.ExitCount, slot.session.PresetName, timeAway)
	}
}

// End completes the user's active session and returns the frozen record, or
// nil when no session is active. An excursion still open at end time is not
// added to AppLeaveTimes: away time past the session end is not attributable
// to it. Persistence is best effort; a storage failure is logged and the
// completed record is still returned.
func (t *Tracker) End(ctx context.Context, userID string, pointsEarned int) *domain.FocusSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.slots[userID]
	if !ok {
		return nil
	}

	session := slot.session
	session.EndTime = t.clock.Now().UnixMilli()
	session.TotalDuration = session.EndTime - session.StartTime
	session.TotalFocusTime = session.TotalDuration - session.TimeAway()
	session.Completed = true
	session.PointsEarned = pointsEarned
	delete(t.slots, userID)

	if err := t.repo.SaveSession(ctx, *session); err != nil {
		logging.Logger.Error("Failed to save focus session", "error", err, "id", session.ID)
	}

	logging.Logger.Info("Focus session ended",
		"user", userID,
		"id", session.ID,
		"focus_time", session.TotalFocusTime,
		"exit_count", session.ExitCount,
		"points", pointsEarned)
	t.notifier.SessionComplete(session.PresetName, pointsEarned)

	return session
}

// Abort discards the user's active session without persisting it.
func (t *Tracker) Abort(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slot, ok := t.slots[userID]; ok {
		logging.Logger.Info("Focus session aborted", "user", userID, "id", slot.session.ID)
		delete(t.slots, userID)
	}
}

// Current returns a copy of the user's active session, or nil.
func (t *Tracker) Current(userID string) *domain.FocusSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot, ok := t.slots[userID]
	if !ok {
		return nil
	}
	return slot.session.Clone()
}

// IsActive reports whether the user has a session in flight.
func (t *Tracker) IsActive(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.slots[userID]
	return ok
}

// Stats aggregates all persisted sessions.
func (t *Tracker) Stats(ctx context.Context) (domain.SessionStats, error) {
	sessions, err := t.repo.ListSessions(ctx)
	if err != nil {
		return domain.SessionStats{}, err
	}
	return domain.ComputeSessionStats(sessions), nil
}

// StatsRange aggregates persisted sessions started within [fromMillis, toMillis].
func (t *Tracker) StatsRange(ctx context.Context, fromMillis, toMillis int64) (domain.SessionStats, error) {
	sessions, err := t.repo.ListSessionsRange(ctx, fromMillis, toMillis)
	if err != nil {
		return domain.SessionStats{}, err
	}
	return domain.ComputeSessionStats(sessions), nil
}
