package ports

import (
	"context"

	"climb/internal/domain"
)

// UsageRepository stores per-day per-app usage entries. Each read-modify-
// write is a separate round trip; serialization is the caller's job.
type UsageRepository interface {
	// GetUsage returns the entry for (day, appID), or nil when none exists
	// yet (a fresh day).
	GetUsage(ctx context.Context, day domain.DayKey, appID string) (*domain.UsageEntry, error)
	PutUsage(ctx context.Context, entry domain.UsageEntry) error
}
