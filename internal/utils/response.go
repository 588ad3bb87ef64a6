package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/silvastudio/intake-go-api/internal/dto"
)

// APIResponse describes the common structure for API responses.
type APIResponse struct {
	Success bool             `json:"success"`
	ID      string           `json:"id,omitempty"`
	Message string           `json:"message,omitempty"`
	Errors  []dto.FieldError `json:"errors,omitempty"`
}

// SendCreated acknowledges an accepted submission with its new identifier.
func SendCreated(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		ID:      id,
	})
}

// SendValidationErrors reports every failing field so a form UI can highlight
// each invalid input at once.
func SendValidationErrors(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(APIResponse{
		Success: false,
		Errors:  errs,
	})
}

// SendError sends an error JSON response with the given status code. The
// message must be safe for clients: internal detail stays in the server log.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}

// SendCollection sends a successful listing under the given key, e.g.
// {"success":true,"contacts":[...]}.
func SendCollection(c *fiber.Ctx, key string, items interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		key:       items,
	})
}
