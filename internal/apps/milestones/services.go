package milestones

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bobo-app/bobo-backend/internal/apps/babies"
	"github.com/bobo-app/bobo-backend/internal/database"
	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMilestoneNotInMonth = errors.New("milestone does not belong to the requested month")
	ErrGuideNotFound       = errors.New("no nutrition guide for this age")
)

const dateLayout = "2006-01-02"

type MilestoneService struct {
	db     *gorm.DB
	babies *babies.BabyService
}

func NewMilestoneService(db *gorm.DB, babySvc *babies.BabyService) *MilestoneService {
	return &MilestoneService{db: db, babies: babySvc}
}

// GetChecklist returns the milestone catalog for one month, grouped by
// developmental area, with each row's logged state for the given baby.
// A negative month means "use the baby's current age in months".
func (s *MilestoneService) GetChecklist(userID, babyID uuid.UUID, month int) (*ChecklistResponse, error) {
	baby, err := s.babies.GetBaby(userID, babyID)
	if err != nil {
		return nil, err
	}
	if month < 0 {
		month = baby.AgeInMonths()
	}

	catalog, err := s.catalogForMonth(month)
	if err != nil {
		return nil, err
	}

	var logged []models.LoggedMilestone
	if err := s.db.Scopes(database.ForBaby(babyID)).Find(&logged).Error; err != nil {
		return nil, fmt.Errorf("failed to load logged milestones: %w", err)
	}
	observed := make(map[uuid.UUID]*time.Time, len(logged))
	for i := range logged {
		observed[logged[i].MilestoneID] = logged[i].DateObserved
	}

	grouped := make(map[string][]ChecklistItem)
	for _, m := range catalog {
		item := ChecklistItem{ID: m.ID, Description: m.Description}
		if date, ok := observed[m.ID]; ok {
			item.Logged = true
			if date != nil {
				formatted := date.Format(dateLayout)
				item.DateObserved = &formatted
			}
		}
		grouped[m.Area] = append(grouped[m.Area], item)
	}

	areas := make([]AreaChecklist, 0, len(grouped))
	for area, items := range grouped {
		areas = append(areas, AreaChecklist{Area: area, Milestones: items})
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Area < areas[j].Area })

	return &ChecklistResponse{BabyID: babyID, Month: month, Areas: areas}, nil
}

// LogMilestones reconciles the submitted kept set against the stored rows
// for one month: rows for that month's milestones missing from the kept set
// are deleted, kept entries are created or updated with their observation
// date. Deletion is always scoped by the requested month, never by the
// submitted selection, so an empty kept set clears the month and nothing
// else. Logged milestones of other months are untouched.
func (s *MilestoneService) LogMilestones(userID, babyID uuid.UUID, req *LogMilestonesRequest) error {
	baby, err := s.babies.GetBaby(userID, babyID)
	if err != nil {
		return err
	}
	month := baby.AgeInMonths()
	if req.Month != nil {
		month = *req.Month
	}

	catalog, err := s.catalogForMonth(month)
	if err != nil {
		return err
	}
	inMonth := make(map[uuid.UUID]bool, len(catalog))
	monthIDs := make([]uuid.UUID, len(catalog))
	for i, m := range catalog {
		inMonth[m.ID] = true
		monthIDs[i] = m.ID
	}

	kept := make([]uuid.UUID, 0, len(req.Entries))
	dates := make(map[uuid.UUID]*time.Time, len(req.Entries))
	for _, entry := range req.Entries {
		if !inMonth[entry.MilestoneID] {
			return ErrMilestoneNotInMonth
		}
		kept = append(kept, entry.MilestoneID)
		if entry.DateObserved != nil {
			date, err := time.Parse(dateLayout, *entry.DateObserved)
			if err != nil {
				return fmt.Errorf("invalid observation date: %w", err)
			}
			dates[entry.MilestoneID] = &date
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if len(monthIDs) > 0 {
			del := tx.Scopes(database.ForBaby(babyID)).Where("milestone_id IN ?", monthIDs)
			if len(kept) > 0 {
				del = del.Where("milestone_id NOT IN ?", kept)
			}
			if err := del.Delete(&models.LoggedMilestone{}).Error; err != nil {
				return fmt.Errorf("failed to delete unchecked milestones: %w", err)
			}
		}

		for _, milestoneID := range kept {
			var existing models.LoggedMilestone
			err := tx.Scopes(database.ForBaby(babyID)).
				Where("milestone_id = ?", milestoneID).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				record := models.LoggedMilestone{
					ID:           uuid.New(),
					BabyID:       babyID,
					MilestoneID:  milestoneID,
					DateObserved: dates[milestoneID],
				}
				if err := tx.Create(&record).Error; err != nil {
					return fmt.Errorf("failed to log milestone: %w", err)
				}
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to load logged milestone: %w", err)
			}
			existing.DateObserved = dates[milestoneID]
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update logged milestone: %w", err)
			}
		}
		return nil
	})
}

// GetExpected returns the milestone catalog for the baby's current age.
func (s *MilestoneService) GetExpected(userID, babyID uuid.UUID) (*ExpectedMilestonesResponse, error) {
	baby, err := s.babies.GetBaby(userID, babyID)
	if err != nil {
		return nil, err
	}
	month := baby.AgeInMonths()

	catalog, err := s.catalogForMonth(month)
	if err != nil {
		return nil, err
	}

	responses := make([]MilestoneResponse, len(catalog))
	for i, m := range catalog {
		responses[i] = MilestoneResponse{ID: m.ID, Month: m.Month, Area: m.Area, Description: m.Description}
	}

	return &ExpectedMilestonesResponse{BabyID: babyID, Month: month, Milestones: responses}, nil
}

// GetActivities returns the activity catalog for the baby's current age.
func (s *MilestoneService) GetActivities(userID, babyID uuid.UUID) (*ActivitiesResponse, error) {
	baby, err := s.babies.GetBaby(userID, babyID)
	if err != nil {
		return nil, err
	}
	month := baby.AgeInMonths()

	var activities []models.Activity
	if err := s.db.Where("month = ?", month).Order("created_at ASC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}

	responses := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = ActivityResponse{ID: a.ID, Month: a.Month, Description: a.Description}
	}

	return &ActivitiesResponse{BabyID: babyID, Month: month, Activities: responses}, nil
}

// GetNutritionGuide returns the feeding guidance for the baby's current age.
// The catalog covers months 0 through 48; older babies get the final row.
func (s *MilestoneService) GetNutritionGuide(userID, babyID uuid.UUID) (*NutritionGuideResponse, error) {
	baby, err := s.babies.GetBaby(userID, babyID)
	if err != nil {
		return nil, err
	}
	month := baby.AgeInMonths()

	lookup := month
	if lookup > maxGuideMonth {
		lookup = maxGuideMonth
	}

	var guide models.NutritionGuide
	err = s.db.Where("month = ?", lookup).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition guide: %w", err)
	}

	return &NutritionGuideResponse{BabyID: babyID, Month: month, Guide: guide.Guide}, nil
}

func (s *MilestoneService) catalogForMonth(month int) ([]models.Milestone, error) {
	var catalog []models.Milestone
	err := s.db.Where("month = ?", month).Order("area ASC, created_at ASC").Find(&catalog).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load milestone catalog: %w", err)
	}
	return catalog, nil
}
