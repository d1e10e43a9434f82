package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/models"
)

type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course models.Course) (models.Course, error)
	Update(ctx context.Context, id string, course models.Course) error
	Delete(ctx context.Context, id string) error
}

type CourseHandler struct {
	service  CourseService
	validate *validator.Validate
}

func NewCourseHandler(service CourseService) *CourseHandler {
	return &CourseHandler{service: service, validate: validator.New()}
}

func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.service.List(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to fetch courses")
	}
	return c.JSON(courses)
}

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	created, err := h.service.Create(c.Context(), course)
	if err != nil {
		return serviceError(c, err, "Failed to create course")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Course created", "course": created})
}

func (h *CourseHandler) Update(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	if err := h.service.Update(c.Context(), c.Params("id"), course); err != nil {
		return serviceError(c, err, "Failed to update course")
	}
	return c.JSON(fiber.Map{"message": "Course updated"})
}

func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to delete course")
	}
	return c.JSON(fiber.Map{"message": "Course deleted"})
}
