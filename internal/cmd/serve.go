package cmd

import (
	"time"

	"canopy/internal/server"
	"canopy/internal/ui"
)

// ServeCmd exposes the TUI over SSH
type ServeCmd struct {
	Host            string `help:"Host to bind the SSH server to" default:"0.0.0.0"`
	Port            string `help:"Port to bind the SSH server to" default:"2222"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run starts the SSH server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil && s.ErrorClearDelay == 10 {
		if cli.settings.ErrorClearDelay != nil {
			s.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
	}
	app := cli.Container.App

	// Each SSH session gets its own container: independent ring buffer,
	// auth session, and mode, sharing only the snapshot database.
	factory := func() (*ui.Model, func() error, error) {
		container, err := NewContainer(app)
		if err != nil {
			return nil, nil, err
		}

		errorManager := ui.NewErrorManager(time.Duration(s.ErrorClearDelay) * time.Second)
		model := ui.NewModel(
			container.App,
			errorManager,
			container.API,
			container.Auth,
			container.Store,
			container.Mode,
		)
		return model, container.Close, nil
	}

	srv, err := server.NewServer(s.Host, s.Port, factory)
	if err != nil {
		return err
	}
	return srv.Start()
}
