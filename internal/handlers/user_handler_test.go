package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/services"
)

type stubUserService struct {
	listResult  []models.UserSummary
	deleteErr   error
	toggleErr   error
	updateErr   error
	clearErr    error
	bulkResult  services.BulkResult
	lastUserID  string
	lastFecha   string
	lastMonths  int
	lastBulkIDs []string
}

func (s *stubUserService) List(context.Context) ([]models.UserSummary, error) {
	return s.listResult, nil
}

func (s *stubUserService) Delete(_ context.Context, userID string) error {
	s.lastUserID = userID
	return s.deleteErr
}

func (s *stubUserService) BulkDelete(_ context.Context, userIDs []string) services.BulkResult {
	s.lastBulkIDs = userIDs
	return s.bulkResult
}

func (s *stubUserService) ToggleActive(_ context.Context, userID string) error {
	s.lastUserID = userID
	return s.toggleErr
}

func (s *stubUserService) UpdateSubscription(_ context.Context, userID, fecha string, months int) error {
	s.lastUserID = userID
	s.lastFecha = fecha
	s.lastMonths = months
	return s.updateErr
}

func (s *stubUserService) ClearSubscription(_ context.Context, userID string) error {
	s.lastUserID = userID
	return s.clearErr
}

func newUserApp(service UserService) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(service)
	app.Get("/api/users", h.List)
	app.Delete("/api/delete-user", h.Delete)
	app.Post("/api/toggle-active", h.ToggleActive)
	app.Post("/api/update-subscription", h.UpdateSubscription)
	app.Post("/api/clear-subscription", h.ClearSubscription)
	return app
}

func deleteJSON(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/api/delete-user", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestListUsers(t *testing.T) {
	service := &stubUserService{listResult: []models.UserSummary{
		{ID: "u1", Email: "a@example.com", FechaSuscripcion: "2024-01-01"},
		{ID: "u2", Email: "b@example.com", FechaSuscripcion: ""},
	}}
	app := newUserApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.UserSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
	assert.Equal(t, "", users[1].FechaSuscripcion)
}

func TestDeleteSingleUser(t *testing.T) {
	service := &stubUserService{}
	app := newUserApp(service)

	resp := deleteJSON(t, app, fiber.Map{"userId": "u1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", service.lastUserID)
}

func TestDeleteMissingUserID(t *testing.T) {
	app := newUserApp(&stubUserService{})

	resp := deleteJSON(t, app, fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUnknownUser(t *testing.T) {
	app := newUserApp(&stubUserService{deleteErr: services.ErrUserNotFound})

	resp := deleteJSON(t, app, fiber.Map{"userId": "ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Bulk mode answers 200 even with failures embedded; each id carries its own
// outcome.
func TestBulkDeleteAlwaysAnswers200(t *testing.T) {
	service := &stubUserService{bulkResult: services.BulkResult{
		Success: []string{"u1", "u3"},
		Failed:  []services.BulkFailure{{ID: "u2", Error: "user not found"}},
	}}
	app := newUserApp(service)

	resp := deleteJSON(t, app, fiber.Map{"userIds": []string{"u1", "u2", "u3"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"u1", "u2", "u3"}, service.lastBulkIDs)

	var body struct {
		Message string              `json:"message"`
		Results services.BulkResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results.Success, 2)
	assert.Len(t, body.Results.Failed, 1)
	assert.Equal(t, "u2", body.Results.Failed[0].ID)
}

func TestToggleActive(t *testing.T) {
	service := &stubUserService{}
	app := newUserApp(service)

	resp := postJSON(t, app, "/api/toggle-active", fiber.Map{"userId": "u1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", service.lastUserID)
}

func TestToggleActiveMissingUserID(t *testing.T) {
	app := newUserApp(&stubUserService{})

	resp := postJSON(t, app, "/api/toggle-active", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSubscription(t *testing.T) {
	service := &stubUserService{}
	app := newUserApp(service)

	resp := postJSON(t, app, "/api/update-subscription", fiber.Map{
		"userId":           "u1",
		"fechaSuscripcion": "2024-01-01",
		"cantidadMeses":    2,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", service.lastUserID)
	assert.Equal(t, "2024-01-01", service.lastFecha)
	assert.Equal(t, 2, service.lastMonths)
}

func TestUpdateSubscriptionBadDate(t *testing.T) {
	app := newUserApp(&stubUserService{})

	resp := postJSON(t, app, "/api/update-subscription", fiber.Map{
		"userId":           "u1",
		"fechaSuscripcion": "01/01/2024",
		"cantidadMeses":    2,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClearSubscription(t *testing.T) {
	service := &stubUserService{}
	app := newUserApp(service)

	resp := postJSON(t, app, "/api/clear-subscription", fiber.Map{"userId": "u1"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u1", service.lastUserID)
}
