package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/domain"
)

func TestAddPlantGeneratesUniqueIDs(t *testing.T) {
	s := New()

	p1 := s.AddPlant(AddPlantParams{Name: "One", Stage: domain.StageSeedling})
	p2 := s.AddPlant(AddPlantParams{Name: "Two", Stage: domain.StageSeedling})

	assert.NotEmpty(t, p1.ID)
	assert.NotEqual(t, p1.ID, p2.ID, "ids generated in the same millisecond must still differ")
	assert.False(t, p1.CreatedAt.IsZero())
	assert.Len(t, s.Plants(), 5) // 3 seeds + 2 added
}

func TestRemovePlantCascadesTasks(t *testing.T) {
	s := New()
	require.NotEmpty(t, s.Tasks())

	// Seed plant-1 has two tasks referencing it
	s.RemovePlant("plant-1")

	for _, p := range s.Plants() {
		assert.NotEqual(t, "plant-1", p.ID)
	}
	for _, task := range s.Tasks() {
		assert.NotEqual(t, "plant-1", task.PlantID, "tasks for the removed plant must be cascaded away")
	}
}

func TestRemovePlantUnknownIDIsNoOp(t *testing.T) {
	s := New()
	plantsBefore := len(s.Plants())
	tasksBefore := len(s.Tasks())

	s.RemovePlant("does-not-exist")

	assert.Len(t, s.Plants(), plantsBefore)
	assert.Len(t, s.Tasks(), tasksBefore)
}

func TestCompleteTaskIsIdempotent(t *testing.T) {
	s := New()

	s.CompleteTask("task-1")
	s.CompleteTask("task-1")

	completed := 0
	for _, task := range s.Tasks() {
		if task.ID == "task-1" {
			assert.True(t, task.Completed)
			completed++
		}
	}
	assert.Equal(t, 1, completed, "completing twice must not duplicate state")
}

func TestCompleteTaskUnknownIDIsNoOp(t *testing.T) {
	s := New()
	before := s.PendingTasks()

	s.CompleteTask("nope")

	assert.Equal(t, before, s.PendingTasks())
}

func TestActivePlantsExcludesCuring(t *testing.T) {
	s := New()
	s.AddPlant(AddPlantParams{Name: "Jarred", Stage: domain.StageCuring})

	for _, p := range s.ActivePlants() {
		assert.NotEqual(t, domain.StageCuring, p.Stage)
	}
}

func TestTasksDueTodayExcludesCompleted(t *testing.T) {
	s := New()
	require.Len(t, s.TasksDueToday(), 2)

	s.CompleteTask("task-1")

	due := s.TasksDueToday()
	require.Len(t, due, 1)
	assert.Equal(t, "task-2", due[0].ID)
}

func TestTasksByBucket(t *testing.T) {
	s := New()

	grouped := s.TasksByBucket()

	assert.Len(t, grouped[domain.DueToday], 2)
	assert.Len(t, grouped[domain.DueTomorrow], 1)
	assert.Len(t, grouped[domain.DueSoon], 2)
	assert.Equal(t, []domain.DueBucket{domain.DueToday, domain.DueTomorrow, domain.DueSoon}, s.Buckets())
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New()

	plants := s.Plants()
	plants[0].Name = "mutated"

	assert.NotEqual(t, "mutated", s.Plants()[0].Name)
}
