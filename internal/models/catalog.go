package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a read-only catalog of age-appropriate play suggestions.
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Month       int       `gorm:"not null;index" json:"month"`
	Description string    `gorm:"not null;type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NutritionGuide holds one feeding-guidance row per month of age, 0 through 48.
type NutritionGuide struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Month     int       `gorm:"not null;uniqueIndex" json:"month"`
	Guide     string    `gorm:"not null;type:text" json:"guide"`
	CreatedAt time.Time `json:"created_at"`
}
