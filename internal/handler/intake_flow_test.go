package handler_test

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/silvastudio/intake-go-api/internal/handler"
	"github.com/silvastudio/intake-go-api/internal/models"
	"github.com/silvastudio/intake-go-api/internal/notify"
	"github.com/silvastudio/intake-go-api/internal/repository"
	"github.com/silvastudio/intake-go-api/internal/service"
	"github.com/silvastudio/intake-go-api/internal/validate"
)

// newIntakeApp wires the real validator, in-memory store and services behind
// the HTTP surface, the way cmd/api does.
func newIntakeApp() *fiber.App {
	logger := zerolog.New(io.Discard)
	contacts := repository.NewMemoryContactRepository()
	bookings := repository.NewMemoryBookingRepository()

	intakeService := service.NewIntakeService(contacts, bookings, validate.New(), notify.NewLogNotifier(logger), logger)
	adminService := service.NewAdminService(contacts, bookings, logger)

	app := fiber.New()
	api := app.Group("/api")
	handler.NewContactHandler(intakeService, logger).Register(api.Group("/contact"))
	handler.NewBookingHandler(intakeService, logger).Register(api.Group("/bjj-booking"))
	handler.NewAdminHandler(adminService, logger).Register(api.Group("/admin"))
	return app
}

func TestIntakeFlowContactSubmissionAppearsInAdminListing(t *testing.T) {
	app := newIntakeApp()

	resp := postJSON(t, app, "/api/contact", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	decodeResponse(t, resp, &created)
	require.True(t, created.Success)
	require.NotEmpty(t, created.ID)

	listResp := getJSON(t, app, "/api/admin/contacts")
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var listing struct {
		Success  bool                       `json:"success"`
		Contacts []models.ContactSubmission `json:"contacts"`
	}
	decodeResponse(t, listResp, &listing)
	require.True(t, listing.Success)
	require.Len(t, listing.Contacts, 1)
	require.Equal(t, created.ID, listing.Contacts[0].ID)
	require.Equal(t, "Jane Doe", listing.Contacts[0].Name)
	require.False(t, listing.Contacts[0].CreatedAt.IsZero())
}

func TestIntakeFlowDuplicateContactPostsStoreTwoSubmissions(t *testing.T) {
	app := newIntakeApp()
	payload := map[string]any{"name": "Jane Doe", "email": "jane@example.com", "message": "Hi"}

	var ids []string
	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, "/api/contact", payload)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var created struct {
			ID string `json:"id"`
		}
		decodeResponse(t, resp, &created)
		ids = append(ids, created.ID)
	}
	require.NotEqual(t, ids[0], ids[1])

	listResp := getJSON(t, app, "/api/admin/contacts")
	var listing struct {
		Contacts []models.ContactSubmission `json:"contacts"`
	}
	decodeResponse(t, listResp, &listing)
	require.Len(t, listing.Contacts, 2, "identical payloads are stored twice by design")
}

func TestIntakeFlowBookingValidationErrors(t *testing.T) {
	app := newIntakeApp()

	resp := postJSON(t, app, "/api/bjj-booking", map[string]any{
		"name":    "Sam",
		"email":   "sam@x.com",
		"phone":   "555-0100",
		"program": "adult-trial",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	decodeResponse(t, resp, &payload)
	require.False(t, payload.Success)
	require.Len(t, payload.Errors, 1)
	require.Equal(t, "smsConsent", payload.Errors[0].Field)
	require.Equal(t, "required", payload.Errors[0].Reason)

	listResp := getJSON(t, app, "/api/admin/bjj-bookings")
	var listing struct {
		Bookings []models.BookingSubmission `json:"bookings"`
	}
	decodeResponse(t, listResp, &listing)
	require.Empty(t, listing.Bookings, "rejected submissions never reach the store")
}
