package domain

import "time"

// PlantStage represents the growth stage of a plant, as an ordered progression
type PlantStage string

const (
	StageSeedling   PlantStage = "SEEDLING"
	StageVegetative PlantStage = "VEGETATIVE"
	StageFlowering  PlantStage = "FLOWERING"
	StageHarvest    PlantStage = "HARVEST"
	StageDrying     PlantStage = "DRYING"
	StageCuring     PlantStage = "CURING"
)

// StageOrder lists all stages in progression order
var StageOrder = []PlantStage{
	StageSeedling,
	StageVegetative,
	StageFlowering,
	StageHarvest,
	StageDrying,
	StageCuring,
}

// Index returns the position of the stage in the progression, or -1 if unknown
func (s PlantStage) Index() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Before reports whether s precedes other in the progression
func (s PlantStage) Before(other PlantStage) bool {
	return s.Index() < other.Index()
}

// PlantStatus represents the lifecycle status of a plant
type PlantStatus string

const (
	StatusActive    PlantStatus = "ACTIVE"
	StatusFrozen    PlantStatus = "FROZEN"
	StatusCompleted PlantStatus = "COMPLETED" // terminal
)

// Cultivar is read-mostly reference data. A plant embeds a copy taken at
// creation time; later catalog renames do not retroactively apply.
type Cultivar struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Plant is the canonical backend-side plant entity
type Plant struct {
	ID        string      `json:"id"`
	Name      *string     `json:"name"`
	Cultivar  Cultivar    `json:"cultivar"`
	Stage     PlantStage  `json:"stage"`
	Status    PlantStatus `json:"status"`
	StartDate string      `json:"startDate"`
	AgeInDays int         `json:"ageInDays"`
	Notes     *string     `json:"notes"`
}

// PlantDashboardItem is the dashboard projection of a plant
type PlantDashboardItem struct {
	ID                  string      `json:"id"`
	Name                *string     `json:"name"`
	Cultivar            Cultivar    `json:"cultivar"`
	Stage               PlantStage  `json:"stage"`
	Status              PlantStatus `json:"status"`
	AgeInDays           int         `json:"ageInDays"`
	TodayRecommendation *string     `json:"todayRecommendation"`
	GrowID              string      `json:"growId"`
	GrowName            string      `json:"growName"`
}

// PlantDetail is the full plant view including signals and action history
type PlantDetail struct {
	Plant
	GrowID              string        `json:"growId"`
	GrowName            string        `json:"growName"`
	TodayRecommendation *string       `json:"todayRecommendation"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
	Signals             []PlantSignal `json:"signals"`
	RecentActions       []PlantAction `json:"recentActions"`
}

// DisplayName returns the plant's name, falling back to the cultivar name
func (p Plant) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Cultivar.Name
}

// ActionType classifies an operation performed on a plant
type ActionType string

const (
	ActionWater    ActionType = "WATER"
	ActionFeed     ActionType = "FEED"
	ActionComplete ActionType = "COMPLETE"
)

// PlantAction is an immutable record of an operation performed on a plant.
// Histories are append-only, ordered by PerformedAt descending for display.
type PlantAction struct {
	ID          string     `json:"id"`
	Type        ActionType `json:"type"`
	PerformedAt time.Time  `json:"performedAt"`
	Notes       *string    `json:"notes"`
}

// SignalType classifies a system-observed notice about a plant
type SignalType string

const (
	SignalInfo    SignalType = "INFO"
	SignalWarning SignalType = "WARNING"
	SignalAction  SignalType = "ACTION"
)

// PlantSignal is a backend-produced notice about a plant, read-only client-side
type PlantSignal struct {
	ID        string     `json:"id"`
	Type      SignalType `json:"type"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
}
