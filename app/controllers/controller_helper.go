package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/telecloudhq/telecloud/app/repository"
)

// repoErrorResponse maps the repository error taxonomy onto HTTP responses.
// Every violation surfaces as a typed failure, so the mapping is mechanical.
func repoErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
		})
	case errors.Is(err, repository.ErrConstraintViolation):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "constraint violation",
			"message": err.Error(),
		})
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "foreign key violation",
			"message": err.Error(),
		})
	case errors.Is(err, repository.ErrCycleDetected):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "cycle detected",
			"message": err.Error(),
		})
	case errors.Is(err, repository.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation error",
			"message": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
