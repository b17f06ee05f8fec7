package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "canopy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadEmptyDatabase(t *testing.T) {
	repo := newTestRepository(t)

	plants, tasks, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, plants)
	assert.Empty(t, tasks)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	plants := []domain.LocalPlant{
		{
			ID:          "plant-1",
			Name:        "Aurora",
			Cultivar:    "Northern Lights",
			Category:    "cannabis-photo",
			Environment: domain.EnvironmentIndoor,
			Stage:       domain.StageFlowering,
			Notes:       "doing well",
			CreatedAt:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	tasks := []domain.Task{
		{
			ID:          "task-1",
			PlantID:     "plant-1",
			PlantName:   "Aurora",
			Type:        domain.TaskWater,
			Description: "Water the plant",
			Due:         domain.DueToday,
			Completed:   true,
		},
	}

	require.NoError(t, repo.Save(ctx, plants, tasks))

	gotPlants, gotTasks, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plants, gotPlants)
	assert.Equal(t, tasks, gotTasks)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := []domain.LocalPlant{{ID: "plant-1", Stage: domain.StageSeedling, Environment: domain.EnvironmentIndoor, CreatedAt: time.Now().UTC().Truncate(time.Second)}}
	require.NoError(t, repo.Save(ctx, first, nil))

	second := []domain.LocalPlant{{ID: "plant-2", Stage: domain.StageVegetative, Environment: domain.EnvironmentOutdoor, CreatedAt: time.Now().UTC().Truncate(time.Second)}}
	require.NoError(t, repo.Save(ctx, second, nil))

	plants, _, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "plant-2", plants[0].ID)
}
