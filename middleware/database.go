// middleware/database.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"clubsanagustin/database"
)

// RequireDatabase rejects data requests while the process is running in
// degraded mode (startup without a reachable database).
func RequireDatabase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.GetDB() == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"mensaje": "Error interno del servidor",
				"error":   "Base de datos no disponible",
			})
		}
		return c.Next()
	}
}
