package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aulaplus/adminpanel/internal/models"
)

type PaymentService interface {
	List(ctx context.Context) ([]models.PaymentRequest, error)
	Approve(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	requests, err := h.service.List(c.Context())
	if err != nil {
		return serviceError(c, err, "Failed to fetch payment requests")
	}
	return c.JSON(requests)
}

// Approve grants the requested course and consumes the request.
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	if err := h.service.Approve(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to approve payment request")
	}
	return c.JSON(fiber.Map{"message": "Payment request approved"})
}

// Reject consumes the request without granting anything.
func (h *PaymentHandler) Reject(c *fiber.Ctx) error {
	if err := h.service.Reject(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to reject payment request")
	}
	return c.JSON(fiber.Map{"message": "Payment request rejected"})
}
