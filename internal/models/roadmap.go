package models

import (
	"time"

	"gorm.io/datatypes"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "Beginner"
	DifficultyIntermediate DifficultyLevel = "Intermediate"
	DifficultyAdvanced     DifficultyLevel = "Advanced"
)

// Step is one entry in a roadmap's ordered step list. Steps are seed
// content and never change after the catalog is initialized.
type Step struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources"`
	Duration    string   `json:"duration"`
}

type Roadmap struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Title       string          `json:"title" gorm:"not null;size:200"`
	Stream      Stream          `json:"stream" gorm:"not null;index;size:20"`
	Description string          `json:"description" gorm:"type:text"`

	Steps datatypes.JSONSlice[Step] `json:"steps" gorm:"type:jsonb"`

	EstimatedDuration string          `json:"estimated_duration" gorm:"size:50"`
	DifficultyLevel   DifficultyLevel `json:"difficulty_level" gorm:"size:20"`

	// Position preserves catalog insertion order for listings.
	Position int `json:"-" gorm:"not null;index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// TotalSteps returns the number of steps used for percentage computation.
func (r *Roadmap) TotalSteps() int {
	return len(r.Steps)
}
