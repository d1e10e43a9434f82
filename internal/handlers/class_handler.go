package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/models"
)

type ClassService interface {
	ListGrouped(ctx context.Context) (models.GroupedClasses, error)
	Create(ctx context.Context, class models.LiveClass) (models.LiveClass, error)
	Update(ctx context.Context, id string, class models.LiveClass) error
	Delete(ctx context.Context, id string) error
}

type ClassHandler struct {
	service  ClassService
	validate *validator.Validate
}

func NewClassHandler(service ClassService) *ClassHandler {
	return &ClassHandler{service: service, validate: validator.New()}
}

// List returns all live classes grouped into pasadas/hoy/proximas.
func (h *ClassHandler) List(c *fiber.Ctx) error {
	grouped, err := h.service.ListGrouped(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to fetch live classes")
	}
	return c.JSON(grouped)
}

func (h *ClassHandler) Create(c *fiber.Ctx) error {
	var class models.LiveClass
	if err := c.BodyParser(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "titulo is required and fecha must be YYYY-MM-DD"})
	}

	created, err := h.service.Create(c.Context(), class)
	if err != nil {
		return serviceError(c, err, "Failed to create live class")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Live class created", "class": created})
}

func (h *ClassHandler) Update(c *fiber.Ctx) error {
	var class models.LiveClass
	if err := c.BodyParser(&class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(class); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "titulo is required and fecha must be YYYY-MM-DD"})
	}

	if err := h.service.Update(c.Context(), c.Params("id"), class); err != nil {
		return serviceError(c, err, "Failed to update live class")
	}
	return c.JSON(fiber.Map{"message": "Live class updated"})
}

func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to delete live class")
	}
	return c.JSON(fiber.Map{"message": "Live class deleted"})
}
