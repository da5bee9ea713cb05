package paths

import (
	"os"
	"path/filepath"
)

// GetClimbHome returns CLIMB_HOME or ~/.climb default
func GetClimbHome() string {
	climbHome := os.Getenv("CLIMB_HOME")
	if climbHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".climb"
		}
		return filepath.Join(homeDir, ".climb")
	}
	return ExpandPath(climbHome)
}

// GetDBPath returns $CLIMB_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetClimbHome(), "state.db")
}

// GetSettingsPath returns $CLIMB_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetClimbHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
