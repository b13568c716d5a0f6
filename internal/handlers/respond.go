package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"scene-service/internal/services"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error   bool        `json:"error" example:"true"`
	Message string      `json:"message" example:"Shape not found"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse confirms an operation that returns no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Shape deleted successfully"`
}

// fail maps service errors onto HTTP status codes. action names what failed
// and is only used for unexpected errors.
func fail(c *fiber.Ctx, err error, action string) error {
	var inputErr *services.InputError
	if errors.As(err, &inputErr) {
		body := ErrorResponse{Error: true, Message: inputErr.Message}
		if len(inputErr.Fields) > 0 {
			body.Details = inputErr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: true, Message: notFound.Error()})
	}

	log.Error().Err(err).Str("path", c.Path()).Msgf("failed to %s", action)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   true,
		Message: "Failed to " + action,
		Details: err.Error(),
	})
}

// parseBody decodes the JSON request body into v.
func parseBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return &services.InputError{Message: "Invalid request format: " + err.Error()}
	}
	return nil
}
