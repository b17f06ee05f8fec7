package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"canopy/internal/config"
	"canopy/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	APIBaseURL  string           `help:"Base URL of the backend API" name:"api-base-url"`
	Mock        *bool            `help:"Use the built-in fixture backend instead of the live API" negatable:""`

	Run      RunCmd      `cmd:"" help:"Start the canopy TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Expose the TUI over SSH"`
	Plants   PlantsCmd   `cmd:"plants" help:"Manage the offline plant list"`
	Grows    GrowsCmd    `cmd:"grows" help:"List and create grows"`
	Catalog  CatalogCmd  `cmd:"catalog" help:"Search the cultivar catalog"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings"`

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
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply if the flag is at its default value and the env var is not set.

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("CANOPY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("CANOPY_DEBUG"); !hasEnv {
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

	// Set environment variables AFTER initialization so child processes
	// inherit the debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CANOPY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CANOPY_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("CANOPY_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the storage layer's
	// logger has something to write to
	container, err := NewContainer(c.appConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// appConfig assembles the runtime configuration: defaults, env overrides,
// settings.json, then CLI flags on top.
func (c *CLI) appConfig() config.App {
	app := config.NewApp()

	if c.settings != nil {
		if c.settings.APIBaseURL != "" && app.APIBaseURL == config.DefaultAPIBaseURL {
			if _, hasEnv := os.LookupEnv("CANOPY_API_BASE_URL"); !hasEnv {
				app.APIBaseURL = c.settings.APIBaseURL
			}
		}
		if c.settings.AuthMode != "" {
			if _, hasEnv := os.LookupEnv("CANOPY_AUTH_MODE"); !hasEnv {
				app.AuthMode = config.AuthMode(c.settings.AuthMode)
			}
		}
		if c.settings.DBPath != "" {
			app.DBPath = config.ExpandPath(c.settings.DBPath)
		}
		if c.settings.MockLatencyMs != nil {
			app.MockLatency = time.Duration(*c.settings.MockLatencyMs) * time.Millisecond
		}
		if c.settings.UIMode != "" && config.ValidUIMode(config.UIMode(c.settings.UIMode)) {
			if _, hasEnv := os.LookupEnv("CANOPY_UI_MODE"); !hasEnv {
				app.UIMode = config.UIMode(c.settings.UIMode)
			}
		}
		if c.settings.UseMockData != nil {
			if _, hasEnv := os.LookupEnv("CANOPY_USE_MOCK"); !hasEnv {
				app.UseMockData = *c.settings.UseMockData
			}
		}
	}

	// Flags win over everything
	if c.APIBaseURL != "" {
		app.APIBaseURL = c.APIBaseURL
	}
	if c.Mock != nil {
		app.UseMockData = *c.Mock
	}

	return app
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
