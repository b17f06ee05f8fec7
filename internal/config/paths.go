package config

import (
	"os"
	"path/filepath"
)

// GetCanopyHome returns CANOPY_HOME or ~/.canopy default
func GetCanopyHome() string {
	canopyHome := os.Getenv("CANOPY_HOME")
	if canopyHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".canopy"
		}
		return filepath.Join(homeDir, ".canopy")
	}
	return ExpandPath(canopyHome)
}

// GetDBPath returns $CANOPY_HOME/canopy.db
func GetDBPath() string {
	return filepath.Join(GetCanopyHome(), "canopy.db")
}

// GetSettingsPath returns $CANOPY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetCanopyHome(), "settings.json")
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
