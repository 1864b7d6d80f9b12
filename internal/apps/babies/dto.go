package babies

import (
	"time"

	"github.com/google/uuid"
)

type CreateBabyRequest struct {
	Name               string   `json:"name" validate:"required,max=200"`
	Gender             string   `json:"gender" validate:"omitempty,oneof=Male Female"`
	DateOfBirth        string   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height             *float64 `json:"height" validate:"omitempty,gt=0"`
	PictureURL         string   `json:"picture_url"`
	ParentName         string   `json:"parent_name" validate:"max=200"`
	ParentRelationship string   `json:"parent_relationship" validate:"max=200"`
}

type UpdateBabyRequest struct {
	Name               *string  `json:"name" validate:"omitempty,max=200"`
	Gender             *string  `json:"gender" validate:"omitempty,oneof=Male Female"`
	DateOfBirth        *string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Weight             *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height             *float64 `json:"height" validate:"omitempty,gt=0"`
	PictureURL         *string  `json:"picture_url"`
	ParentName         *string  `json:"parent_name" validate:"omitempty,max=200"`
	ParentRelationship *string  `json:"parent_relationship" validate:"omitempty,max=200"`
}

type BabyResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Gender             string    `json:"gender"`
	DateOfBirth        string    `json:"date_of_birth"`
	AgeInMonths        int       `json:"age_in_months"`
	Weight             *float64  `json:"weight"`
	Height             *float64  `json:"height"`
	PictureURL         string    `json:"picture_url"`
	ParentName         string    `json:"parent_name"`
	ParentRelationship string    `json:"parent_relationship"`
	CreatedAt          time.Time `json:"created_at"`
}

type BabiesListResponse struct {
	Babies []BabyResponse `json:"babies"`
	Total  int64          `json:"total"`
}
