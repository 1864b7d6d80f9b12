package babies

import (
	"errors"

	"github.com/bobo-app/bobo-backend/internal/authctx"
	"github.com/bobo-app/bobo-backend/internal/dto"
	"github.com/bobo-app/bobo-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BabyHandler struct {
	babyService *BabyService
}

func NewBabyHandler(babyService *BabyService) *BabyHandler {
	return &BabyHandler{babyService: babyService}
}

// CreateBaby handles POST /babies.
func (h *BabyHandler) CreateBaby(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateBabyRequest
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

	baby, err := h.babyService.CreateBaby(userID, &req)
	if err != nil {
		if errors.Is(err, ErrFutureBirthDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create baby",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(baby))
}

// GetBabies handles GET /babies - lists the authenticated user's babies.
func (h *BabyHandler) GetBabies(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	babies, total, err := h.babyService.GetBabies(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch babies",
		})
	}

	responses := make([]BabyResponse, len(babies))
	for i := range babies {
		responses[i] = toResponse(&babies[i])
	}

	return c.JSON(BabiesListResponse{Babies: responses, Total: total})
}

// GetBaby handles GET /babies/:id.
func (h *BabyHandler) GetBaby(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	babyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid baby ID",
		})
	}

	baby, err := h.babyService.GetBaby(userID, babyID)
	if err != nil {
		if errors.Is(err, ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch baby",
		})
	}

	return c.JSON(toResponse(baby))
}

// UpdateBaby handles PUT /babies/:id.
func (h *BabyHandler) UpdateBaby(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	babyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid baby ID",
		})
	}

	var req UpdateBabyRequest
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

	baby, err := h.babyService.UpdateBaby(userID, babyID, &req)
	if err != nil {
		if errors.Is(err, ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		if errors.Is(err, ErrFutureBirthDate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update baby",
		})
	}

	return c.JSON(toResponse(baby))
}

// DeleteBaby handles DELETE /babies/:id.
func (h *BabyHandler) DeleteBaby(c *fiber.Ctx) error {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	babyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid baby ID",
		})
	}

	if err := h.babyService.DeleteBaby(userID, babyID); err != nil {
		if errors.Is(err, ErrBabyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Baby not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete baby",
		})
	}

	return c.JSON(fiber.Map{"message": "Baby deleted"})
}
