package cmd

import (
	"context"
	"fmt"
	"strings"

	"canopy/internal/domain"
)

// GrowsCmd lists and creates grows
type GrowsCmd struct {
	Add  GrowsAddCmd  `cmd:"add" help:"Create a new grow"`
	List GrowsListCmd `cmd:"list" help:"List grows" default:"1"`
}

// GrowsListCmd lists grows from the backend
type GrowsListCmd struct{}

// Run executes the list command
func (g *GrowsListCmd) Run(cli *CLI) error {
	grows, err := cli.Container.API.ListGrows(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list grows: %w", err)
	}

	if len(grows) == 0 {
		fmt.Println("No grows")
		return nil
	}

	for _, grow := range grows {
		status := ""
		if grow.Status == domain.GrowArchived {
			status = " (archived)"
		}
		fmt.Printf("%s  %-20s %-12s %d plants%s\n",
			grow.ID, grow.Name, strings.ToLower(string(grow.Environment)), grow.PlantCount, status)
	}
	return nil
}

// GrowsAddCmd creates a new grow
type GrowsAddCmd struct {
	Name        string `arg:"" help:"Grow name"`
	Environment string `help:"Growing environment" enum:"INDOOR,OUTDOOR,GREENHOUSE" default:"INDOOR"`
}

// Run executes the add command
func (g *GrowsAddCmd) Run(cli *CLI) error {
	payload := domain.CreateGrowPayload{
		Name:        g.Name,
		Environment: domain.GrowEnvironment(g.Environment),
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	grow, err := cli.Container.API.CreateGrow(context.Background(), payload)
	if err != nil {
		return fmt.Errorf("failed to create grow: %w", err)
	}

	fmt.Printf("Grow '%s' created (%s)\n", grow.Name, grow.ID)
	return nil
}
