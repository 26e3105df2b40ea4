package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resto/internal/repositories"
	"resto/internal/validation"
)

// respondError maps the service error taxonomy onto HTTP responses: schema
// violations become 400 with the field-error map, missing records become 404,
// and everything else is a store failure reported generically and logged with
// detail server-side.
func respondError(c *fiber.Ctx, logger *zap.SugaredLogger, notFoundMessage string, err error) error {
	var fields validation.FieldErrors
	switch {
	case errors.As(err, &fields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fields,
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMessage,
		})
	default:
		logger.Errorw("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
}
