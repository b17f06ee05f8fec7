package domain

import "time"

// GrowEnvironment is the kind of cultivation environment
type GrowEnvironment string

const (
	EnvironmentIndoor     GrowEnvironment = "INDOOR"
	EnvironmentOutdoor    GrowEnvironment = "OUTDOOR"
	EnvironmentGreenhouse GrowEnvironment = "GREENHOUSE"
)

// GrowStatus is the lifecycle status of a grow
type GrowStatus string

const (
	GrowActive   GrowStatus = "ACTIVE"
	GrowArchived GrowStatus = "ARCHIVED"
)

// Grow is a named cultivation environment. PlantCount is denormalized and
// maintained by the backend; it must equal the number of plants referencing
// the grow.
type Grow struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Environment GrowEnvironment `json:"environment"`
	Status      GrowStatus      `json:"status"`
	PlantCount  int             `json:"plantCount"`
	CreatedAt   time.Time       `json:"createdAt"`
}
