package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/store"
)

func TestTaskScreenRendersBucketsInOrder(t *testing.T) {
	screen := NewTaskScreen(store.New())

	view := screen.View()

	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "Tomorrow")
	assert.Contains(t, view, "This week")
	assert.Contains(t, view, "Water the plant (soil is dry)")
}

func TestTaskScreenCursorNavigation(t *testing.T) {
	s := store.New()
	screen := NewTaskScreen(s)

	first := screen.Selected()
	require.NotNil(t, first)

	screen.MoveDown()
	second := screen.Selected()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	screen.MoveUp()
	assert.Equal(t, first.ID, screen.Selected().ID)
}

func TestTaskScreenClampsCursorAfterCompletion(t *testing.T) {
	s := store.New()
	screen := NewTaskScreen(s)

	for i := 0; i < 10; i++ {
		screen.MoveDown()
	}
	last := screen.Selected()
	require.NotNil(t, last)
	s.CompleteTask(last.ID)

	selected := screen.Selected()
	require.NotNil(t, selected)
	assert.NotEqual(t, last.ID, selected.ID)
}

func TestTaskScreenEmptyState(t *testing.T) {
	s := store.New()
	for _, p := range s.Plants() {
		s.RemovePlant(p.ID)
	}
	screen := NewTaskScreen(s)

	assert.Nil(t, screen.Selected())
	assert.Contains(t, screen.View(), "All caught up.")
}
