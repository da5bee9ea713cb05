package cmd

import (
	adapterclock "climb/internal/adapters/clock"
	adapternotify "climb/internal/adapters/notify"
	adapterstorage "climb/internal/adapters/storage"
	"climb/internal/config"
	"climb/internal/logging"
	"climb/internal/ports"
	"climb/internal/services"
	"climb/paths"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	Blocker *services.Blocker
	Ledger  *services.Ledger
	Streak  *services.Streak
	Tracker *services.Tracker

	// Shared collaborators
	Clock  ports.Clock
	UserID string

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	var clock ports.Clock = adapterclock.NewSystemClock()
	if settings.Timezone != "" {
		pinned, err := adapterclock.NewSystemClockIn(settings.Timezone)
		if err != nil {
			logging.Logger.Warn("Invalid timezone in settings, using local time",
				"timezone", settings.Timezone, "error", err)
		} else {
			clock = pinned
		}
	}

	repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	notifier := adapternotify.NewConsoleNotifier()
	blockerStore := config.NewSettingsBlockerStore()

	return &Container{
		Blocker: services.NewBlocker(blockerStore),
		Clock:   clock,
		Ledger: services.NewLedger(repo, notifier, clock,
			settings.EffectiveAppLimits(), settings.EffectivePenaltyPoints()),
		Streak:  services.NewStreak(repo, clock),
		Tracker: services.NewTracker(repo, notifier, clock),
		UserID:  settings.EffectiveUserID(),
		repo:    repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
