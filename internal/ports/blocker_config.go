package ports

import "climb/internal/domain"

// BlockerConfigStore persists the blocker policy preferences.
type BlockerConfigStore interface {
	LoadBlockerConfig() (domain.BlockerConfig, error)
	SaveBlockerConfig(config domain.BlockerConfig) error
}
