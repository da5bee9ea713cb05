package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"climb/internal/domain"
	"climb/paths"
)

// DefaultPenaltyPoints is deducted once per day per app that crosses its
// usage limit.
const DefaultPenaltyPoints = 25

// DefaultUserID identifies the local user when no user id is configured.
const DefaultUserID = "local"

// Settings represents the structure of ~/.climb/settings.json
type Settings struct {
	AppLimitsMinutes map[string]int        `json:"app_limits_minutes,omitempty"`
	Blocker          *domain.BlockerConfig `json:"blocker,omitempty"`
	Debug            *bool                 `json:"debug,omitempty"`
	MaxLogFiles      *int                  `json:"max_log_files,omitempty"`
	PenaltyPoints    *int                  `json:"penalty_points,omitempty"`
	Timezone         string                `json:"timezone,omitempty"`
	UserID           string                `json:"user_id,omitempty"`
}

// DefaultAppLimits returns the built-in per-app daily limits in minutes.
func DefaultAppLimits() map[string]int {
	return map[string]int{domain.DefaultSocialApp: 10}
}

// EffectiveAppLimits merges the configured limits over the defaults.
func (s *Settings) EffectiveAppLimits() map[string]int {
	limits := DefaultAppLimits()
	for appID, minutes := range s.AppLimitsMinutes {
		limits[domain.NormalizeAppID(appID)] = minutes
	}
	return limits
}

// EffectivePenaltyPoints returns the configured penalty size or the default.
func (s *Settings) EffectivePenaltyPoints() int {
	if s.PenaltyPoints != nil {
		return *s.PenaltyPoints
	}
	return DefaultPenaltyPoints
}

// EffectiveUserID returns the configured user id or the local default.
func (s *Settings) EffectiveUserID() string {
	if s.UserID != "" {
		return s.UserID
	}
	return DefaultUserID
}

// LoadSettings loads settings from $CLIMB_HOME/settings.json (or ~/.climb/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CLIMB_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
