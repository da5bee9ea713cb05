package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"climb/internal/config"
	"climb/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Blocker  BlockerCmd  `cmd:"blocker" help:"Manage the distraction blocker"`
	Demo     DemoCmd     `cmd:"demo" help:"Run a scripted focus session against a throwaway database"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`
	Stats    StatsCmd    `cmd:"stats" help:"Show focus session statistics"`
	Team     TeamCmd     `cmd:"team" help:"Manage team streaks and bonuses"`
	Track    TrackCmd    `cmd:"track" help:"Track a focus session from app state events on stdin" default:"1"`
	Usage    UsageCmd    `cmd:"usage" help:"Record and inspect daily app usage"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("CLIMB_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CLIMB_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CLIMB_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CLIMB_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("CLIMB_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the GORM logger
	// never sees a nil logging.Logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
