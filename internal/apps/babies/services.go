package babies

import (
	"errors"
	"fmt"
	"time"

	"github.com/bobo-app/bobo-backend/internal/database"
	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBabyNotFound    = errors.New("baby not found")
	ErrFutureBirthDate = errors.New("date of birth cannot be in the future")
)

const dateLayout = "2006-01-02"

type BabyService struct {
	db *gorm.DB
}

func NewBabyService(db *gorm.DB) *BabyService {
	return &BabyService{db: db}
}

func (s *BabyService) CreateBaby(userID uuid.UUID, req *CreateBabyRequest) (*models.Baby, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}
	if dob.After(time.Now()) {
		return nil, ErrFutureBirthDate
	}

	baby := models.Baby{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               req.Name,
		Gender:             req.Gender,
		DateOfBirth:        dob,
		Weight:             req.Weight,
		Height:             req.Height,
		PictureURL:         req.PictureURL,
		ParentName:         req.ParentName,
		ParentRelationship: req.ParentRelationship,
	}

	if err := s.db.Create(&baby).Error; err != nil {
		return nil, fmt.Errorf("failed to create baby: %w", err)
	}
	return &baby, nil
}

// GetBaby loads one baby scoped to its owner. A foreign or unknown id is
// reported as not found either way.
func (s *BabyService) GetBaby(userID, babyID uuid.UUID) (*models.Baby, error) {
	var baby models.Baby
	err := s.db.Scopes(database.OwnedBy(userID)).First(&baby, "id = ?", babyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBabyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load baby: %w", err)
	}
	return &baby, nil
}

func (s *BabyService) GetBabies(userID uuid.UUID) ([]models.Baby, int64, error) {
	var babies []models.Baby
	var total int64

	if err := s.db.Model(&models.Baby{}).Scopes(database.OwnedBy(userID)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count babies: %w", err)
	}

	err := s.db.Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").
		Find(&babies).Error
	return babies, total, err
}

func (s *BabyService) UpdateBaby(userID, babyID uuid.UUID, req *UpdateBabyRequest) (*models.Baby, error) {
	baby, err := s.GetBaby(userID, babyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		baby.Name = *req.Name
	}
	if req.Gender != nil {
		baby.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth: %w", err)
		}
		if dob.After(time.Now()) {
			return nil, ErrFutureBirthDate
		}
		baby.DateOfBirth = dob
	}
	if req.Weight != nil {
		baby.Weight = req.Weight
	}
	if req.Height != nil {
		baby.Height = req.Height
	}
	if req.PictureURL != nil {
		baby.PictureURL = *req.PictureURL
	}
	if req.ParentName != nil {
		baby.ParentName = *req.ParentName
	}
	if req.ParentRelationship != nil {
		baby.ParentRelationship = *req.ParentRelationship
	}

	if err := s.db.Save(baby).Error; err != nil {
		return nil, fmt.Errorf("failed to update baby: %w", err)
	}
	return baby, nil
}

// DeleteBaby removes a baby and its logged milestones in one transaction.
func (s *BabyService) DeleteBaby(userID, babyID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(database.OwnedBy(userID)).Where("id = ?", babyID).Delete(&models.Baby{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete baby: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBabyNotFound
		}
		return tx.Scopes(database.ForBaby(babyID)).Delete(&models.LoggedMilestone{}).Error
	})
}

func toResponse(baby *models.Baby) BabyResponse {
	return BabyResponse{
		ID:                 baby.ID,
		Name:               baby.Name,
		Gender:             baby.Gender,
		DateOfBirth:        baby.DateOfBirth.Format(dateLayout),
		AgeInMonths:        baby.AgeInMonths(),
		Weight:             baby.Weight,
		Height:             baby.Height,
		PictureURL:         baby.PictureURL,
		ParentName:         baby.ParentName,
		ParentRelationship: baby.ParentRelationship,
		CreatedAt:          baby.CreatedAt,
	}
}
