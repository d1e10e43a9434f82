package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/services"
)

type UserService interface {
	List(ctx context.Context) ([]models.UserSummary, error)
	Delete(ctx context.Context, userID string) error
	BulkDelete(ctx context.Context, userIDs []string) services.BulkResult
	ToggleActive(ctx context.Context, userID string) error
	UpdateSubscription(ctx context.Context, userID, fechaSuscripcion string, months int) error
	ClearSubscription(ctx context.Context, userID string) error
}

type UserHandler struct {
	service  UserService
	validate *validator.Validate
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service, validate: validator.New()}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to fetch users")
	}
	return c.JSON(users)
}

// Delete handles both single and bulk deletion from the same body. Bulk mode
// always answers 200: each id carries its own success or failure, and a
// partial failure never aborts the batch.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var req struct {
		UserID  string   `json:"userId"`
		UserIDs []string `json:"userIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if len(req.UserIDs) > 0 {
		results := h.service.BulkDelete(c.Context(), req.UserIDs)
		return c.JSON(fiber.Map{
			"message": "Bulk delete completed",
			"results": results,
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}
	if err := h.service.Delete(c.Context(), req.UserID); err != nil {
		return serviceError(c, err, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	if err := h.service.ToggleActive(c.Context(), req.UserID); err != nil {
		return serviceError(c, err, "Failed to toggle active status")
	}
	return c.JSON(fiber.Map{"message": "Active status updated"})
}

func (h *UserHandler) UpdateSubscription(c *fiber.Ctx) error {
	var req struct {
		UserID           string `json:"userId" validate:"required"`
		FechaSuscripcion string `json:"fechaSuscripcion" validate:"required,datetime=2006-01-02"`
		CantidadMeses    int    `json:"cantidadMeses" validate:"required,min=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId, fechaSuscripcion (YYYY-MM-DD) and cantidadMeses are required"})
	}

	if err := h.service.UpdateSubscription(c.Context(), req.UserID, req.FechaSuscripcion, req.CantidadMeses); err != nil {
		return serviceError(c, err, "Failed to update subscription")
	}
	return c.JSON(fiber.Map{"message": "Subscription updated"})
}

func (h *UserHandler) ClearSubscription(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"userId" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	if err := h.service.ClearSubscription(c.Context(), req.UserID); err != nil {
		return serviceError(c, err, "Failed to clear subscription")
	}
	return c.JSON(fiber.Map{"message": "Subscription cleared"})
}
