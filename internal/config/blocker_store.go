package config

import (
	"climb/internal/domain"
	"climb/internal/ports"
)

var _ ports.BlockerConfigStore = (*SettingsBlockerStore)(nil)

// SettingsBlockerStore keeps the blocker policy inside settings.json so the
// whole user configuration lives in one file.
type SettingsBlockerStore struct{}

// NewSettingsBlockerStore creates a new SettingsBlockerStore
func NewSettingsBlockerStore() *SettingsBlockerStore {
	return &SettingsBlockerStore{}
}

// LoadBlockerConfig returns the stored policy, or the defaults when none is
// saved yet.
func (s *SettingsBlockerStore) LoadBlockerConfig() (domain.BlockerConfig, error) {
	settings, err := LoadSettings()
	if err != nil {
		return domain.BlockerConfig{}, err
	}
	if settings.Blocker == nil {
		return domain.DefaultBlockerConfig(), nil
	}
	return *settings.Blocker, nil
}

// SaveBlockerConfig writes the policy back, preserving the rest of the
// settings file.
func (s *SettingsBlockerStore) SaveBlockerConfig(config domain.BlockerConfig) error {
	settings, err := LoadSettings()
	if err != nil {
		return err
	}
	settings.Blocker = &config
	return SaveSettings(settings)
}
