package milestones

import (
	"errors"

	"github.com/bobo-app/bobo-backend/internal/apps/babies"
	"github.com/bobo-app/bobo-backend/internal/authctx"
	"github.com/bobo-app/bobo-backend/internal/dto"
	"github.com/bobo-app/bobo-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MilestoneHandler struct {
	milestoneService *MilestoneService
}

func NewMilestoneHandler(milestoneService *MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// GetChecklist handles GET /babies/:id/milestones - the log-milestone
// checklist, optionally for a past month via ?month=M.
func (h *MilestoneHandler) GetChecklist(c *fiber.Ctx) error {
	userID, babyID, errResp := h.identify(c)
	if errResp != nil {
		return errResp(c)
	}

	month := c.QueryInt("month", -1)

	checklist, err := h.milestoneService.GetChecklist(userID, babyID, month)
	if err != nil {
		if errors.Is(err, babies.ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch milestones",
		})
	}

	return c.JSON(checklist)
}

// LogMilestones handles PUT /babies/:id/milestones - reconciles the
// submitted kept set against the stored rows for one month.
func (h *MilestoneHandler) LogMilestones(c *fiber.Ctx) error {
	userID, babyID, errResp := h.identify(c)
	if errResp != nil {
		return errResp(c)
	}

	var req LogMilestonesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if err := h.milestoneService.LogMilestones(userID, babyID, &req); err != nil {
		if errors.Is(err, babies.ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		if errors.Is(err, ErrMilestoneNotInMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log milestones",
		})
	}

	return c.JSON(fiber.Map{"message": "Milestones logged successfully"})
}

// GetExpected handles GET /babies/:id/milestones/expected.
func (h *MilestoneHandler) GetExpected(c *fiber.Ctx) error {
	userID, babyID, errResp := h.identify(c)
	if errResp != nil {
		return errResp(c)
	}

	expected, err := h.milestoneService.GetExpected(userID, babyID)
	if err != nil {
		if errors.Is(err, babies.ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch expected milestones",
		})
	}

	return c.JSON(expected)
}

// GetActivities handles GET /babies/:id/activities.
func (h *MilestoneHandler) GetActivities(c *fiber.Ctx) error {
	userID, babyID, errResp := h.identify(c)
	if errResp != nil {
		return errResp(c)
	}

	activities, err := h.milestoneService.GetActivities(userID, babyID)
	if err != nil {
		if errors.Is(err, babies.ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch activities",
		})
	}

	return c.JSON(activities)
}

// GetNutritionGuide handles GET /babies/:id/nutrition.
func (h *MilestoneHandler) GetNutritionGuide(c *fiber.Ctx) error {
	userID, babyID, errResp := h.identify(c)
	if errResp != nil {
		return errResp(c)
	}

	guide, err := h.milestoneService.GetNutritionGuide(userID, babyID)
	if err != nil {
		if errors.Is(err, babies.ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		if errors.Is(err, ErrGuideNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No nutrition guide for this age",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch nutrition guide",
		})
	}

	return c.JSON(guide)
}

// identify pulls the authenticated user and the :id path param; the third
// return value is a ready error responder when either is missing.
func (h *MilestoneHandler) identify(c *fiber.Ctx) (uuid.UUID, uuid.UUID, func(*fiber.Ctx) error) {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
	}

	babyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid baby ID",
			})
		}
	}

	return userID, babyID, nil
}
