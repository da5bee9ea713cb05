package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/ports"
)

// Blocker derives which apps should be suppressed right now. The policy
// itself is pure; this service only adds config persistence around it.
type Blocker struct {
	mu    sync.Mutex
	store ports.BlockerConfigStore
}

// NewBlocker creates a new Blocker
func NewBlocker(store ports.BlockerConfigStore) *Blocker {
	return &Blocker{store: store}
}

// Config loads the stored policy merged over the defaults. A load failure
// degrades to the defaults.
func (b *Blocker) Config() domain.BlockerConfig {
	stored, err := b.store.LoadBlockerConfig()
	if err != nil {
		logging.Logger.Warn("Failed to load blocker config, using defaults", "error", err)
		return domain.DefaultBlockerConfig()
	}

	defaults := domain.DefaultBlockerConfig()
	stored.BlockedApps = domain.MergeBlockedApps(defaults.BlockedApps, stored.BlockedApps)
	return stored
}

// ActiveBlockedApps returns the apps to suppress given whether a focus
// session is running.
func (b *Blocker) ActiveBlockedApps(sessionActive bool) []domain.BlockedApp {
	return b.Config().ActiveBlockedApps(sessionActive)
}

// SetEnabled toggles the whole blocker.
func (b *Blocker) SetEnabled(enabled bool) (domain.BlockerConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	config := b.Config()
	config.Enabled = enabled
	return config, b.save(config)
}

// SetBlockOnSessionStart toggles engaging the blocker when a session starts.
func (b *Blocker) SetBlockOnSessionStart(block bool) (domain.BlockerConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	config := b.Config()
	config.BlockOnSessionStart = block
	return config, b.save(config)
}

// SetAppBlocked marks one app as blocked or allowed.
func (b *Blocker) SetAppBlocked(appID string, blocked bool) (domain.BlockerConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	config := b.Config()
	found := false
	for i := range config.BlockedApps {
		if config.BlockedApps[i].ID == appID {
			config.BlockedApps[i].IsBlocked = blocked
			found = true
		}
	}
	if !found {
		return config, fmt.Errorf("unknown blocked app %q", appID)
	}
	return config, b.save(config)
}

// AddCustomApp adds a user-defined app to the block list, blocked by default.
func (b *Blocker) AddCustomApp(packageName, name, category string) (domain.BlockerConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if category == "" {
		category = "other"
	}
	config := b.Config()
	config.BlockedApps = append(config.BlockedApps, domain.BlockedApp{
		Category:    category,
		ID:          "custom-" + uuid.New().String(),
		IsBlocked:   true,
		Name:        name,
		PackageName: packageName,
	})
	return config, b.save(config)
}

// RemoveApp drops an app from the block list.
func (b *Blocker) RemoveApp(appID string) (domain.BlockerConfig, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	config := b.Config()
	apps := config.BlockedApps[:0]
	for _, app := range config.BlockedApps {
		if app.ID != appID {
			apps = append(apps, app)
		}
	}
	config.BlockedApps = apps
	return config, b.save(config)
}

func (b *Blocker) save(config domain.BlockerConfig) error {
	if err := b.store.SaveBlockerConfig(config); err != nil {
		return fmt.Errorf("failed to save blocker config: %w", err)
	}
	return nil
}
