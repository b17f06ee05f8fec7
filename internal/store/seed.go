package store

import (
	"time"

	"canopy/internal/domain"
)

// Catalog is the offline cultivar catalog used by the add-plant flow
var Catalog = []domain.CatalogItem{
	{
		ID:           "nl-1",
		Name:         "Northern Lights",
		Category:     "cannabis-photo",
		Description:  "Classic indica-dominant strain",
		WateringDays: 2,
		LightHours:   18,
		GrowthDays:   89,
	},
	{
		ID:           "ww-1",
		Name:         "White Widow",
		Category:     "cannabis-photo",
		Description:  "Balanced hybrid",
		WateringDays: 2,
		LightHours:   18,
		GrowthDays:   103,
	},
	{
		ID:           "gg-1",
		Name:         "Gorilla Glue",
		Category:     "cannabis-photo",
		Description:  "Potent high-yield hybrid",
		WateringDays: 2,
		LightHours:   18,
		GrowthDays:   95,
	},
	{
		ID:           "ak-1",
		Name:         "AK-47 Auto",
		Category:     "cannabis-auto",
		Description:  "Fast-growing autoflower",
		WateringDays: 2,
		LightHours:   20,
		GrowthDays:   75,
	},
	{
		ID:           "bd-1",
		Name:         "Blue Dream",
		Category:     "cannabis-photo",
		Description:  "Sativa-dominant hybrid with berry aroma",
		WateringDays: 2,
		LightHours:   18,
		GrowthDays:   98,
	},
}

// CatalogItemByID returns the catalog entry with the given id, or nil
func CatalogItemByID(id string) *domain.CatalogItem {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

func seedPlants() []domain.LocalPlant {
	return []domain.LocalPlant{
		{
			ID:              "plant-1",
			Name:            "Aurora",
			Cultivar:        "Northern Lights",
			Category:        "cannabis-photo",
			Environment:     domain.EnvironmentIndoor,
			Stage:           domain.StageFlowering,
			ExpectedHarvest: "2026-02-15",
			Notes:           "Great growth, minor leaf burn on week 3",
			CreatedAt:       time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			Recommendation:  "Check trichomes. Consider flushing if cloudy.",
		},
		{
			ID:              "plant-2",
			Name:            "Blue Dream #1",
			Cultivar:        "Blue Dream",
			Category:        "cannabis-photo",
			Environment:     domain.EnvironmentIndoor,
			Stage:           domain.StageVegetative,
			ExpectedHarvest: "2026-03-10",
			CreatedAt:       time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			Recommendation:  "Time to top for better canopy spread.",
		},
		{
			ID:              "plant-3",
			Name:            "Gorilla",
			Cultivar:        "Gorilla Glue",
			Category:        "cannabis-photo",
			Environment:     domain.EnvironmentIndoor,
			Stage:           domain.StageSeedling,
			ExpectedHarvest: "2026-04-20",
			Notes:           "Just sprouted",
			CreatedAt:       time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
			Recommendation:  "Water today. Soil is dry.",
		},
	}
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "task-1",
			PlantID:     "plant-3",
			PlantName:   "Gorilla",
			Type:        domain.TaskWater,
			Description: "Water the plant (soil is dry)",
			Due:         domain.DueToday,
		},
		{
			ID:          "task-2",
			PlantID:     "plant-1",
			PlantName:   "Aurora",
			Type:        domain.TaskCheck,
			Description: "Check trichomes with a loupe",
			Due:         domain.DueToday,
		},
		{
			ID:          "task-3",
			PlantID:     "plant-2",
			PlantName:   "Blue Dream #1",
			Type:        domain.TaskFeed,
			Description: "Apply nutrients (veg phase)",
			Due:         domain.DueTomorrow,
		},
		{
			ID:          "task-4",
			PlantID:     "plant-2",
			PlantName:   "Blue Dream #1",
			Type:        domain.TaskTransplant,
			Description: "Top to shape the canopy",
			Due:         domain.DueSoon,
		},
		{
			ID:          "task-5",
			PlantID:     "plant-1",
			PlantName:   "Aurora",
			Type:        domain.TaskHarvest,
			Description: "Prepare the drying area",
			Due:         domain.DueSoon,
		},
	}
}
