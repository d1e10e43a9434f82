package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/services"
)

// serviceError translates a service error into the API's status taxonomy:
// 404 for missing documents, 403 for inactive accounts, 400 for rejected
// input, 429 for provider quota, 500 for everything else.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, services.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment request not found"})
	case errors.Is(err, services.ErrClassNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Live class not found"})
	case errors.Is(err, services.ErrCourseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	case errors.Is(err, services.ErrInactiveAccount):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is inactive"})
	case errors.Is(err, services.ErrNotAnImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL does not serve an image"})
	case errors.Is(err, services.ErrQuotaExceeded):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Provider quota exceeded"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
