package models

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is a static catalog row: a developmental benchmark expected
// around a given age in months, grouped by developmental area.
type Milestone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Month       int       `gorm:"not null;index" json:"month"`
	Area        string    `gorm:"not null;size:100" json:"area"`
	Description string    `gorm:"not null;type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoggedMilestone records that a baby has reached a milestone. At most one
// row exists per (baby, milestone) pair.
type LoggedMilestone struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BabyID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_logged_baby_milestone" json:"baby_id"`
	MilestoneID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_logged_baby_milestone" json:"milestone_id"`
	DateObserved *time.Time `gorm:"type:date" json:"date_observed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Baby         Baby       `gorm:"foreignKey:BabyID" json:"-"`
	Milestone    Milestone  `gorm:"foreignKey:MilestoneID" json:"-"`
}
