package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"canopy/internal/config"
	"canopy/internal/logging"
	"canopy/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Mode            string `help:"Initial feature mode" enum:"user,observer,dev," default:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil && r.ErrorClearDelay == 10 {
		if cli.settings.ErrorClearDelay != nil {
			r.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
	}

	container := cli.Container
	if r.Mode != "" {
		container.Mode.Set(config.UIMode(r.Mode))
	}

	logging.Logger.Info("Starting canopy TUI",
		"mock", container.App.UseMockData,
		"mode", container.Mode.Current())

	errorManager := ui.NewErrorManager(time.Duration(r.ErrorClearDelay) * time.Second)
	model := ui.NewModel(
		container.App,
		errorManager,
		container.API,
		container.Auth,
		container.Store,
		container.Mode,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
