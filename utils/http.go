// utils/http.go - JSON response helpers
package utils

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// Error bodies follow the API contract: 400/500 carry {mensaje, error},
// 404 carries {mensaje} only.

// BadRequest responds 400 with a human-readable message and the
// underlying detail.
func BadRequest(c *fiber.Ctx, mensaje string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"mensaje": mensaje,
		"error":   err.Error(),
	})
}

// NotFound responds 404 with the entity's fixed message.
func NotFound(c *fiber.Ctx, mensaje string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"mensaje": mensaje,
	})
}

// Internal responds 500. The detail string is hidden outside development
// so storage errors never leak to production clients.
func Internal(c *fiber.Ctx, mensaje string, err error) error {
	detalle := err.Error()
	if os.Getenv("APP_ENV") == "production" {
		detalle = "Detalles ocultos en producción"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"mensaje": mensaje,
		"error":   detalle,
	})
}
