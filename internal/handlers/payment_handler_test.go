package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/services"
)

type stubPaymentService struct {
	requests   []models.PaymentRequest
	approveErr error
	rejectErr  error
	lastID     string
}

func (s *stubPaymentService) List(context.Context) ([]models.PaymentRequest, error) {
	return s.requests, nil
}

func (s *stubPaymentService) Approve(_ context.Context, id string) error {
	s.lastID = id
	return s.approveErr
}

func (s *stubPaymentService) Reject(_ context.Context, id string) error {
	s.lastID = id
	return s.rejectErr
}

func newPaymentApp(service PaymentService) *fiber.App {
	app := fiber.New()
	h := NewPaymentHandler(service)
	app.Get("/api/solicitudes", h.List)
	app.Post("/api/solicitudes/:id/approve", h.Approve)
	app.Post("/api/solicitudes/:id/reject", h.Reject)
	return app
}

func TestApprovePaymentRequest(t *testing.T) {
	service := &stubPaymentService{}
	app := newPaymentApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/solicitudes/abc123/approve", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc123", service.lastID)
}

func TestApproveUnknownRequest(t *testing.T) {
	app := newPaymentApp(&stubPaymentService{approveErr: services.ErrRequestNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/solicitudes/ghost/approve", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRejectPaymentRequest(t *testing.T) {
	service := &stubPaymentService{}
	app := newPaymentApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/solicitudes/abc123/reject", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc123", service.lastID)
}
