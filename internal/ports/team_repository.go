package ports

import (
	"context"

	"climb/internal/domain"
)

// TeamRepository loads and saves team snapshots. Updates are expressed as
// load snapshot, mutate, save snapshot; there is no optimistic-concurrency
// check.
type TeamRepository interface {
	// GetTeam returns domain.ErrTeamNotFound for unknown ids.
	GetTeam(ctx context.Context, teamID string) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	SaveTeam(ctx context.Context, team *domain.Team) error
}
