package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of ~/.canopy/settings.json
type Settings struct {
	APIBaseURL      string `json:"api_base_url,omitempty"`
	AuthMode        string `json:"auth_mode,omitempty"`
	DBPath          string `json:"db_path,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	ErrorClearDelay *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	MockLatencyMs   *int   `json:"mock_latency_ms,omitempty"`
	UIMode          string `json:"ui_mode,omitempty"`
	UseMockData     *bool  `json:"use_mock_data,omitempty"`
}

// LoadSettings loads settings from $CANOPY_HOME/settings.json (or
// ~/.canopy/settings.json if not set). Returns empty Settings if the file
// doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
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

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CANOPY_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
