package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/silvastudio/intake-go-api/internal/service"
	"github.com/silvastudio/intake-go-api/internal/utils"
)

// AdminHandler exposes stored submissions for administrative review.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/contacts", h.listContacts)
	router.Get("/bjj-bookings", h.listBookings)
}

func (h *AdminHandler) listContacts(c *fiber.Ctx) error {
	items, err := h.service.ListContacts(c.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list contact submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list contacts")
	}

	return utils.SendCollection(c, "contacts", items)
}

func (h *AdminHandler) listBookings(c *fiber.Ctx) error {
	items, err := h.service.ListBookings(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list booking submissions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list bookings")
	}

	return utils.SendCollection(c, "bookings", items)
}
