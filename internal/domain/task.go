package domain

import "time"

// TaskType classifies a local reminder
type TaskType string

const (
	TaskWater      TaskType = "water"
	TaskFeed       TaskType = "feed"
	TaskCheck      TaskType = "check"
	TaskHarvest    TaskType = "harvest"
	TaskTransplant TaskType = "transplant"
)

// DueBucket is a coarse relative-time classification used instead of
// absolute scheduling
type DueBucket string

const (
	DueToday    DueBucket = "today"
	DueTomorrow DueBucket = "tomorrow"
	DueSoon     DueBucket = "soon"
)

// dueOrder drives grouped display: today first, soon last
var dueOrder = map[DueBucket]int{
	DueToday:    0,
	DueTomorrow: 1,
	DueSoon:     2,
}

// SortKey returns the display ordering position of the bucket
func (b DueBucket) SortKey() int {
	if k, ok := dueOrder[b]; ok {
		return k
	}
	return len(dueOrder)
}

// Task is a pending reminder held by the local store. It transitions once
// from pending to completed and is never un-completed; removal happens only
// via cascading plant removal.
type Task struct {
	ID          string    `json:"id"`
	PlantID     string    `json:"plantId"`
	PlantName   string    `json:"plantName"`
	Type        TaskType  `json:"type"`
	Description string    `json:"description"`
	Due         DueBucket `json:"due"`
	Completed   bool      `json:"completed"`
}

// LocalPlant is the offline-only plant record held by the local store,
// independent of the backend-facing Plant entity
type LocalPlant struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Cultivar        string          `json:"cultivar"`
	Category        string          `json:"category"`
	Environment     GrowEnvironment `json:"environment"`
	Stage           PlantStage      `json:"stage"`
	ExpectedHarvest string          `json:"expectedHarvest,omitempty"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"createdAt"`
	Recommendation  string          `json:"recommendation,omitempty"`
}

// CatalogItem is an entry of the offline cultivar catalog used by the
// add-plant flow
type CatalogItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	WateringDays int    `json:"wateringDays"`
	LightHours   int    `json:"lightHours"`
	GrowthDays   int    `json:"growthDays"`
}
