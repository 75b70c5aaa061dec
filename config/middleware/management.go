package middleware

import (
	"school-management-backend/pkg/paseto"

	"github.com/gofiber/fiber/v2"
)

// ManagementMiddleware restricts a route to users with the management role.
// It must run after AuthMiddleware.
func ManagementMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data is corrupt"})
		}

		if claims.Role != "management" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Management privileges are required"})
		}

		return c.Next()
	}
}

// TeacherOrManagementMiddleware allows staff roles through and blocks students.
func TeacherOrManagementMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data is corrupt"})
		}

		if claims.Role != "teacher" && claims.Role != "management" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Staff privileges are required"})
		}

		return c.Next()
	}
}
