package storage

import "time"

// PlantModel is the GORM model for locally tracked plants
type PlantModel struct {
	Category        string `gorm:"default:''"`
	CreatedAt       time.Time
	Cultivar        string `gorm:"default:''"`
	Environment     string `gorm:"not null;default:'INDOOR';check:environment IN ('INDOOR','OUTDOOR','GREENHOUSE')"`
	ExpectedHarvest string `gorm:"default:''"`
	ID              string `gorm:"primaryKey"`
	Name            string `gorm:"not null;default:''"`
	Notes           string `gorm:"default:''"`
	PlantedAt       time.Time
	Recommendation  string `gorm:"default:''"`
	Stage           string `gorm:"not null;default:'SEEDLING'"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (PlantModel) TableName() string { return "plants" }

// TaskModel is the GORM model for local task reminders
type TaskModel struct {
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	Description string `gorm:"not null;default:''"`
	Due         string `gorm:"not null;default:'today';check:due IN ('today','tomorrow','soon')"`
	ID          string `gorm:"primaryKey"`
	PlantID     string `gorm:"not null;index:idx_tasks_plant_id"`
	PlantName   string `gorm:"not null;default:''"`
	Type        string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }
