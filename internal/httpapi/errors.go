package httpapi

import (
	"errors"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/gofiber/fiber/v2"
)

const setupHint = "set up your cycle first"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case domain.IsConfigError(err):
		return fiber.StatusConflict
	case domain.IsValidationError(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// handleError maps service errors onto status codes. Internal errors are
// logged and reported without detail.
func (handler *Handler) handleError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	switch status {
	case fiber.StatusConflict:
		return apiError(c, status, setupHint+": "+err.Error())
	case fiber.StatusInternalServerError:
		handler.logger.ErrorContext(c.UserContext(), "http_error", "path", c.Path(), "error", err.Error())
		return apiError(c, status, "internal error")
	default:
		return apiError(c, status, err.Error())
	}
}
