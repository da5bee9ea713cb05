package ports

import (
	"context"

	"climb/internal/domain"
)

// FocusSessionWriter persists completed focus sessions. Aborted sessions
// never reach it.
type FocusSessionWriter interface {
	SaveSession(ctx context.Context, session domain.FocusSession) error
}

// FocusSessionReader reads persisted focus sessions.
type FocusSessionReader interface {
	ListSessions(ctx context.Context) ([]domain.FocusSession, error)
	// ListSessionsRange returns sessions whose StartTime falls in
	// [fromMillis, toMillis].
	ListSessionsRange(ctx context.Context, fromMillis, toMillis int64) ([]domain.FocusSession, error)
}

// FocusSessionRepository is the composite interface.
type FocusSessionRepository interface {
	FocusSessionReader
	FocusSessionWriter
}
