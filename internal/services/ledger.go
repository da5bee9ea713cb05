package services

import (
	"context"
	"sync"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/ports"
)

// Ledger accounts foreground time spent in external apps, one entry per
// (calendar day, app), and enforces daily limits with once-per-day nudge and
// penalty gates. The mutex makes each check-and-set a critical section: the
// storage layer offers no transactions, so the read-modify-write of the
// daily flags must not interleave.
type Ledger struct {
	clock         ports.Clock
	limits        map[string]int
	mu            sync.Mutex
	notifier      ports.Notifier
	penaltyPoints int
	repo          ports.UsageRepository
}

// NewLedger creates a new Ledger. Limit keys are normalized app ids mapping
// to minutes per day; zero or absent means unlimited.
func NewLedger(repo ports.UsageRepository, notifier ports.Notifier, clock ports.Clock, limits map[string]int, penaltyPoints int) *Ledger {
	normalized := make(map[string]int, len(limits))
	for appID, minutes := range limits {
		normalized[domain.NormalizeAppID(appID)] = minutes
	}
	return &Ledger{
		clock:         clock,
		limits:        normalized,
		notifier:      notifier,
		penaltyPoints: penaltyPoints,
		repo:          repo,
	}
}

// entry loads today's entry for the app, or a fresh zero entry. Storage
// failures degrade to the zero entry and a log line.
func (l *Ledger) entry(ctx context.Context, appID string) domain.UsageEntry {
	day := domain.NewDayKey(l.clock.Now())
	stored, err := l.repo.GetUsage(ctx, day, appID)
	if err != nil {
		logging.Logger.Error("Failed to load usage entry", "error", err, "app", appID, "day", day)
	}
	if stored == nil {
		return domain.UsageEntry{AppID: appID, Day: day}
	}
	return *stored
}

// put saves the entry best effort.
func (l *Ledger) put(ctx context.Context, entry domain.UsageEntry) {
	if err := l.repo.PutUsage(ctx, entry); err != nil {
		logging.Logger.Error("Failed to save usage entry", "error", err, "app", entry.AppID, "day", entry.Day)
	}
}

// RecordUsage adds foreground time for the app to today's total. Zero or
// negative amounts are ignored. The day boundary is the local calendar
// date: usage recorded after midnight lands in a fresh entry even
// mid-session.
func (l *Ledger) RecordUsage(ctx context.Context, appID string, millis int64) {
	if millis <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entry(ctx, domain.NormalizeAppID(appID))
	entry.AccumulatedMillis += millis
	l.put(ctx, entry)
}

// UsageMinutes returns today's accumulated whole minutes for the app.
func (l *Ledger) UsageMinutes(ctx context.Context, appID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entry(ctx, domain.NormalizeAppID(appID))
	return entry.Minutes()
}

// LimitMinutes returns the configured daily limit for the app; 0 means no
// limit.
func (l *Ledger) LimitMinutes(appID string) int {
	return l.limits[domain.NormalizeAppID(appID)]
}

// IsLimitExceeded reports whether today's usage has reached the app's limit.
// Apps without a limit are never exceeded.
func (l *Ledger) IsLimitExceeded(ctx context.Context, appID string) bool {
	limit := l.LimitMinutes(appID)
	if limit <= 0 {
		return false
	}
	return l.UsageMinutes(ctx, appID) >= limit
}

// WasNudgeShown reports whether the once-per-day nudge already fired for the
// app today.
func (l *Ledger) WasNudgeShown(ctx context.Context, appID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entry(ctx, domain.NormalizeAppID(appID))
	return entry.NudgeShown
}

// MarkNudgeShown records that the nudge fired today. Idempotent.
func (l *Ledger) MarkNudgeShown(ctx context.Context, appID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entry(ctx, domain.NormalizeAppID(appID))
	if entry.NudgeShown {
		return
	}
	entry.NudgeShown = true
	l.put(ctx, entry)
}

// ApplyPenaltyIfNeeded applies the daily penalty for the app at most once
// per day. A second call the same day returns {Applied: false, PointsLost:
// 0} no matter how often the limit-check path runs. The check-and-set runs
// under the ledger mutex; if the flag write itself fails the penalty may
// re-apply on a later call, which is accepted risk.
func (l *Ledger) ApplyPenaltyIfNeeded(ctx context.Context, appID string, points int) domain.PenaltyResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entry(ctx, domain.NormalizeAppID(appID))
	if entry.PenaltyApplied {
		return domain.PenaltyResult{}
	}
	entry.PenaltyApplied = true
	l.put(ctx, entry)

	logging.Logger.Info("Daily penalty applied", "app", entry.AppID, "points_lost", points)
	l.notifier.PenaltyAlert(points)
	return domain.PenaltyResult{Applied: true, PointsLost: points}
}

// CheckAndNudge runs the full limit-enforcement path for the app: when
// today's usage has crossed the limit it shows the nudge (once per day) and
// applies the daily penalty (once per day). The two gates are independent
// booleans so a penalty can be forced without re-triggering the nudge and
// vice versa.
func (l *Ledger) CheckAndNudge(ctx context.Context, appID string) (nudged bool, penalty domain.PenaltyResult) {
	if !l.IsLimitExceeded(ctx, appID) {
		return false, domain.PenaltyResult{}
	}

	normalized := domain.NormalizeAppID(appID)
	used := l.UsageMinutes(ctx, appID)
	limit := l.LimitMinutes(appID)

	l.mu.Lock()
	entry := l.entry(ctx, normalized)
	if !entry.NudgeShown {
		entry.NudgeShown = true
		l.put(ctx, entry)
		nudged = true
	}
	l.mu.Unlock()

	if nudged {
		logging.Logger.Info("Usage limit nudge shown", "app", normalized, "used_min", used, "limit_min", limit)
		l.notifier.LimitNudge(normalized, used, limit)
	}

	penalty = l.ApplyPenaltyIfNeeded(ctx, appID, l.penaltyPoints)
	return nudged, penalty
}

// PenaltyPoints returns the configured daily penalty size.
func (l *Ledger) PenaltyPoints() int {
	return l.penaltyPoints
}
