package cmd

import (
	"fmt"
	"strings"

	"canopy/internal/domain"
	"canopy/internal/store"
)

// PlantsCmd manages the offline plant list
type PlantsCmd struct {
	Add   PlantsAddCmd   `cmd:"add" help:"Add a plant to the offline list"`
	Del   PlantsDelCmd   `cmd:"del" help:"Remove a plant and its tasks"`
	List  PlantsListCmd  `cmd:"list" help:"List offline plants" default:"1"`
	Tasks PlantsTasksCmd `cmd:"tasks" help:"List pending tasks by due date"`
}

// PlantsListCmd lists offline plants
type PlantsListCmd struct {
	All bool `help:"Include plants in the curing stage" short:"a"`
}

// Run executes the list command
func (p *PlantsListCmd) Run(cli *CLI) error {
	plants := cli.Container.Store.Plants()
	if !p.All {
		plants = cli.Container.Store.ActivePlants()
	}

	if len(plants) == 0 {
		fmt.Println("No plants")
		return nil
	}

	for _, plant := range plants {
		fmt.Printf("%s  %-20s %-14s %s\n",
			plant.ID, plant.Name, strings.ToLower(string(plant.Stage)), plant.Cultivar)
		if plant.Recommendation != "" {
			fmt.Printf("%*s  %s\n", len(plant.ID), "", plant.Recommendation)
		}
	}
	return nil
}

// PlantsAddCmd adds a plant to the offline list
type PlantsAddCmd struct {
	Name        string `arg:"" help:"Plant name"`
	Cultivar    string `help:"Catalog entry id (e.g. nl-1)" required:""`
	Environment string `help:"Growing environment" enum:"INDOOR,OUTDOOR,GREENHOUSE" default:"INDOOR"`
	Stage       string `help:"Growth stage" enum:"SEEDLING,VEGETATIVE,FLOWERING,HARVEST,DRYING,CURING" default:"SEEDLING"`
	Notes       string `help:"Free-form notes" default:""`
}

// Run executes the add command
func (p *PlantsAddCmd) Run(cli *CLI) error {
	item := store.CatalogItemByID(p.Cultivar)
	if item == nil {
		return fmt.Errorf("unknown catalog entry %q", p.Cultivar)
	}

	plant := cli.Container.Store.AddPlant(store.AddPlantParams{
		Name:           p.Name,
		Cultivar:       item.Name,
		Category:       item.Category,
		Environment:    domain.GrowEnvironment(p.Environment),
		Stage:          domain.PlantStage(p.Stage),
		Notes:          p.Notes,
		Recommendation: fmt.Sprintf("Water every %d days, %dh light", item.WateringDays, item.LightHours),
	})

	fmt.Printf("Plant '%s' added (%s)\n", plant.Name, plant.ID)
	return nil
}

// PlantsDelCmd removes a plant and its tasks
type PlantsDelCmd struct {
	ID string `arg:"" help:"Plant id to remove"`
}

// Run executes the del command
func (p *PlantsDelCmd) Run(cli *CLI) error {
	cli.Container.Store.RemovePlant(p.ID)
	fmt.Printf("Plant '%s' removed\n", p.ID)
	return nil
}

// PlantsTasksCmd lists pending tasks grouped by due date
type PlantsTasksCmd struct {
	Done string `help:"Mark the given task id as completed" default:""`
}

// Run executes the tasks command
func (p *PlantsTasksCmd) Run(cli *CLI) error {
	s := cli.Container.Store

	if p.Done != "" {
		s.CompleteTask(p.Done)
		fmt.Printf("Task '%s' completed\n", p.Done)
		return nil
	}

	byBucket := s.TasksByBucket()
	if len(byBucket) == 0 {
		fmt.Println("No pending tasks")
		return nil
	}
	for _, bucket := range s.Buckets() {
		fmt.Printf("%s:\n", bucket)
		for _, task := range byBucket[bucket] {
			fmt.Printf("  %s  %-10s %s (%s)\n", task.ID, task.Type, task.Description, task.PlantName)
		}
	}
	return nil
}
