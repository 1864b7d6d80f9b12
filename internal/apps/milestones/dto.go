package milestones

import (
	"github.com/google/uuid"
)

// MilestoneEntry is one kept checklist row in a log submission.
type MilestoneEntry struct {
	MilestoneID  uuid.UUID `json:"milestone_id" validate:"required"`
	DateObserved *string   `json:"date_observed" validate:"omitempty,datetime=2006-01-02"`
}

// LogMilestonesRequest replaces the kept set for one month. Month defaults
// to the baby's current age in months when omitted.
type LogMilestonesRequest struct {
	Month   *int             `json:"month" validate:"omitempty,min=0"`
	Entries []MilestoneEntry `json:"entries" validate:"dive"`
}

type ChecklistItem struct {
	ID           uuid.UUID `json:"id"`
	Description  string    `json:"description"`
	Logged       bool      `json:"logged"`
	DateObserved *string   `json:"date_observed"`
}

type AreaChecklist struct {
	Area       string          `json:"area"`
	Milestones []ChecklistItem `json:"milestones"`
}

type ChecklistResponse struct {
	BabyID uuid.UUID       `json:"baby_id"`
	Month  int             `json:"month"`
	Areas  []AreaChecklist `json:"areas"`
}

type MilestoneResponse struct {
	ID          uuid.UUID `json:"id"`
	Month       int       `json:"month"`
	Area        string    `json:"area"`
	Description string    `json:"description"`
}

type ExpectedMilestonesResponse struct {
	BabyID     uuid.UUID           `json:"baby_id"`
	Month      int                 `json:"month"`
	Milestones []MilestoneResponse `json:"milestones"`
}

type ActivityResponse struct {
	ID          uuid.UUID `json:"id"`
	Month       int       `json:"month"`
	Description string    `json:"description"`
}

type ActivitiesResponse struct {
	BabyID     uuid.UUID          `json:"baby_id"`
	Month      int                `json:"month"`
	Activities []ActivityResponse `json:"activities"`
}

type NutritionGuideResponse struct {
	BabyID uuid.UUID `json:"baby_id"`
	Month  int       `json:"month"`
	Guide  string    `json:"guide"`
}
