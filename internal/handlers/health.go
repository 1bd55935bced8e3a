package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Ping is a liveness probe.
func Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
