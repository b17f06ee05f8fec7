package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"canopy/internal/cmd"
	"canopy/internal/config"
	"canopy/version"
)

// Tagline is the application's tagline used in help text
const Tagline = "Track your plants from the terminal"

func main() {
	// Load settings from ~/.canopy/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("canopy"),
		kong.Description(Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
