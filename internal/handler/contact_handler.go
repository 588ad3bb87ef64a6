package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/silvastudio/intake-go-api/internal/service"
	"github.com/silvastudio/intake-go-api/internal/utils"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service service.IntakeService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.IntakeService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	raw := map[string]any{}
	if err := c.BodyParser(&raw); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	ack, fieldErrs, err := h.service.SubmitContact(c.Context(), raw)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to process contact submission")
		return utils.SendError(c, fiber.StatusInternalServerError, "something went wrong, please try again")
	}
	if len(fieldErrs) > 0 {
		return utils.SendValidationErrors(c, fieldErrs)
	}

	return utils.SendCreated(c, ack.ID)
}
