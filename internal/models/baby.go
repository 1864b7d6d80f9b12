package models

import (
	"time"

	"github.com/google/uuid"
)

type Baby struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string    `gorm:"not null;size:200" json:"name"`
	Gender             string    `gorm:"size:50" json:"gender"`
	DateOfBirth        time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Weight             *float64  `gorm:"type:decimal(5,2)" json:"weight"`
	Height             *float64  `gorm:"type:decimal(5,2)" json:"height"`
	PictureURL         string    `gorm:"type:text" json:"picture_url"`
	ParentName         string    `gorm:"size:200" json:"parent_name"`
	ParentRelationship string    `gorm:"size:200" json:"parent_relationship"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	User               User      `gorm:"foreignKey:UserID" json:"-"`
}

// AgeInMonths returns the whole calendar months elapsed since the baby's
// date of birth. It is derived on every call and never stored.
func (b *Baby) AgeInMonths() int {
	return MonthsBetween(b.DateOfBirth, time.Now())
}

// MonthsBetween counts whole calendar months from dob to now, accounting
// for varying month lengths rather than a flat day count.
func MonthsBetween(dob, now time.Time) int {
	months := (now.Year()-dob.Year())*12 + int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
