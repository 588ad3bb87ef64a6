package handler_test

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/handler"
)

func TestBookingHandlerCreated(t *testing.T) {
	svc := &mockIntakeService{ack: dto.SubmissionAck{ID: "bk-1"}}
	app := fiber.New()
	handler.NewBookingHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/bjj-booking"))

	resp := postJSON(t, app, "/api/bjj-booking", map[string]any{
		"name":       "Sam",
		"email":      "sam@x.com",
		"phone":      "555-0100",
		"program":    "adult-trial",
		"smsConsent": true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	decodeResponse(t, resp, &payload)
	require.True(t, payload.Success)
	require.Equal(t, "bk-1", payload.ID)
}

func TestBookingHandlerMissingConsent(t *testing.T) {
	svc := &mockIntakeService{fieldErrs: []dto.FieldError{
		{Field: "smsConsent", Reason: dto.ReasonRequired},
	}}
	app := fiber.New()
	handler.NewBookingHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/bjj-booking"))

	resp := postJSON(t, app, "/api/bjj-booking", map[string]any{
		"name":    "Sam",
		"email":   "sam@x.com",
		"phone":   "555-0100",
		"program": "adult-trial",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Success bool             `json:"success"`
		Errors  []dto.FieldError `json:"errors"`
	}
	decodeResponse(t, resp, &payload)
	require.False(t, payload.Success)
	require.Contains(t, payload.Errors, dto.FieldError{Field: "smsConsent", Reason: "required"})
}
