package ui

import (
	"fmt"
	"strings"

	"canopy/internal/domain"
	"canopy/internal/store"
	"canopy/internal/theme"
)

// Task type icons shown in front of each row
var taskIcons = map[domain.TaskType]string{
	domain.TaskWater:      "💧",
	domain.TaskFeed:       "🧪",
	domain.TaskCheck:      "🔍",
	domain.TaskHarvest:    "✂",
	domain.TaskTransplant: "🪴",
}

var bucketLabels = map[domain.DueBucket]string{
	domain.DueToday:    "Today",
	domain.DueTomorrow: "Tomorrow",
	domain.DueSoon:     "This week",
}

func bucketStyle(b domain.DueBucket) func(...string) string {
	switch b {
	case domain.DueToday:
		return theme.DueTodayStyle.Render
	case domain.DueTomorrow:
		return theme.DueTomorrowStyle.Render
	default:
		return theme.DueSoonStyle.Render
	}
}

// TaskScreen renders pending tasks grouped by due bucket with a movable
// cursor. The store is the source of truth; the screen re-reads it on
// every render.
type TaskScreen struct {
	store  *store.Store
	cursor int
}

// NewTaskScreen creates a task screen over the given store
func NewTaskScreen(s *store.Store) *TaskScreen {
	return &TaskScreen{store: s}
}

// visibleTasks returns pending tasks flattened in bucket display order
func (t *TaskScreen) visibleTasks() []domain.Task {
	byBucket := t.store.TasksByBucket()
	var out []domain.Task
	for _, bucket := range t.store.Buckets() {
		for _, task := range byBucket[bucket] {
			if !task.Completed {
				out = append(out, task)
			}
		}
	}
	return out
}

// MoveUp moves the cursor one row up
func (t *TaskScreen) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveDown moves the cursor one row down
func (t *TaskScreen) MoveDown() {
	if t.cursor < len(t.visibleTasks())-1 {
		t.cursor++
	}
}

// Selected returns the task under the cursor, or nil when the screen is empty
func (t *TaskScreen) Selected() *domain.Task {
	tasks := t.visibleTasks()
	if len(tasks) == 0 {
		return nil
	}
	if t.cursor >= len(tasks) {
		t.cursor = len(tasks) - 1
	}
	task := tasks[t.cursor]
	return &task
}

// View renders the grouped task list
func (t *TaskScreen) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Today"))
	b.WriteString("\n")

	tasks := t.visibleTasks()
	if len(tasks) == 0 {
		b.WriteString(theme.MutedStyle.Render("All caught up. No pending tasks."))
		b.WriteString("\n")
		return b.String()
	}
	if t.cursor >= len(tasks) {
		t.cursor = len(tasks) - 1
	}

	index := 0
	byBucket := t.store.TasksByBucket()
	for _, bucket := range t.store.Buckets() {
		pending := make([]domain.Task, 0, len(byBucket[bucket]))
		for _, task := range byBucket[bucket] {
			if !task.Completed {
				pending = append(pending, task)
			}
		}
		if len(pending) == 0 {
			continue
		}

		b.WriteString(bucketStyle(bucket)(bucketLabels[bucket]))
		b.WriteString("\n")
		for _, task := range pending {
			cursor := " "
			if index == t.cursor {
				cursor = ">"
			}
			icon, ok := taskIcons[task.Type]
			if !ok {
				icon = "•"
			}
			line := fmt.Sprintf("%s %s %s", cursor, icon,
				theme.NormalStyle.Render(task.Description))
			b.WriteString(line)
			b.WriteString(theme.MutedStyle.Render("  (" + task.PlantName + ")"))
			b.WriteString("\n")
			index++
		}
		b.WriteString("\n")
	}

	return b.String()
}
