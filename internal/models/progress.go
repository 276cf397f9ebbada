package models

import (
	"time"

	"gorm.io/datatypes"
)

// Progress tracks which steps of one roadmap a user has completed.
// At most one record exists per (user, roadmap) pair; updates replace
// the whole record (last write wins, no optimistic concurrency).
type Progress struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"not null;index;size:36;uniqueIndex:idx_user_roadmap"`
	RoadmapID string `json:"career_id" gorm:"not null;size:36;uniqueIndex:idx_user_roadmap"`

	CompletedSteps     datatypes.JSONSlice[string] `json:"completed_steps" gorm:"type:jsonb"`
	ProgressPercentage float64                     `json:"progress_percentage"`

	LastUpdated time.Time `json:"last_updated"`
}

func (Progress) TableName() string {
	return "progress_records"
}

// HasStep reports whether stepID is already in the completed set.
func (p *Progress) HasStep(stepID string) bool {
	for _, id := range p.CompletedSteps {
		if id == stepID {
			return true
		}
	}
	return false
}
