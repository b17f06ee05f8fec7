package cmd

import (
	"context"
	"fmt"
)

// CatalogCmd searches the cultivar catalog
type CatalogCmd struct {
	Query string `arg:"" optional:"" help:"Search term (substring match on the cultivar name)"`
	Limit int    `help:"Maximum number of results" default:"20"`
}

// Run executes the catalog search
func (c *CatalogCmd) Run(cli *CLI) error {
	cultivars, err := cli.Container.API.SearchCultivars(context.Background(), c.Query, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to search catalog: %w", err)
	}

	if len(cultivars) == 0 {
		fmt.Println("No matches")
		return nil
	}

	for _, cultivar := range cultivars {
		fmt.Printf("%s  %s\n", cultivar.ID, cultivar.Name)
	}
	return nil
}
