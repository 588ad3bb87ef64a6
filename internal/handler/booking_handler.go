package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/silvastudio/intake-go-api/internal/service"
	"github.com/silvastudio/intake-go-api/internal/utils"
)

// BookingHandler handles lesson booking requests from the BJJ funnel.
type BookingHandler struct {
	service service.IntakeService
	logger  zerolog.Logger
}

// NewBookingHandler constructs a booking handler.
func NewBookingHandler(service service.IntakeService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger.With().Str("component", "booking_handler").Logger(),
	}
}

// Register wires booking routes.
func (h *BookingHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *BookingHandler) submit(c *fiber.Ctx) error {
	raw := map[string]any{}
	if err := c.BodyParser(&raw); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	ack, fieldErrs, err := h.service.SubmitBooking(c.Context(), raw)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to process booking submission")
		return utils.SendError(c, fiber.StatusInternalServerError, "something went wrong, please try again")
	}
	if len(fieldErrs) > 0 {
		return utils.SendValidationErrors(c, fieldErrs)
	}

	return utils.SendCreated(c, ack.ID)
}
