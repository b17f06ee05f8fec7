package storage

import (
	"canopy/internal/domain"
)

// plantToModel converts a domain plant to its GORM model
func plantToModel(p domain.LocalPlant) PlantModel {
	return PlantModel{
		Category:        p.Category,
		Cultivar:        p.Cultivar,
		Environment:     string(p.Environment),
		ExpectedHarvest: p.ExpectedHarvest,
		ID:              p.ID,
		Name:            p.Name,
		Notes:           p.Notes,
		PlantedAt:       p.CreatedAt,
		Recommendation:  p.Recommendation,
		Stage:           string(p.Stage),
	}
}

// modelToPlant converts a GORM model back to the domain plant
func modelToPlant(m PlantModel) domain.LocalPlant {
	return domain.LocalPlant{
		Category:        m.Category,
		CreatedAt:       m.PlantedAt,
		Cultivar:        m.Cultivar,
		Environment:     domain.GrowEnvironment(m.Environment),
		ExpectedHarvest: m.ExpectedHarvest,
		ID:              m.ID,
		Name:            m.Name,
		Notes:           m.Notes,
		Recommendation:  m.Recommendation,
		Stage:           domain.PlantStage(m.Stage),
	}
}

// taskToModel converts a domain task to its GORM model
func taskToModel(t domain.Task) TaskModel {
	return TaskModel{
		Completed:   t.Completed,
		Description: t.Description,
		Due:         string(t.Due),
		ID:          t.ID,
		PlantID:     t.PlantID,
		PlantName:   t.PlantName,
		Type:        string(t.Type),
	}
}

// modelToTask converts a GORM model back to the domain task
func modelToTask(m TaskModel) domain.Task {
	return domain.Task{
		Completed:   m.Completed,
		Description: m.Description,
		Due:         domain.DueBucket(m.Due),
		ID:          m.ID,
		PlantID:     m.PlantID,
		PlantName:   m.PlantName,
		Type:        domain.TaskType(m.Type),
	}
}
