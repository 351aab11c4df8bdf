package middleware

import (
	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates a route to admin users. Runs after JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role == models.RoleAdmin {
		return c.Next()
	}

	// The profile role may be stale, check granted roles too.
	userID := c.Locals("user_id").(string)
	if models.HasRole(database.DB, userID, models.RoleAdmin) {
		return c.Next()
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Admin access required",
	})
}

// RequireSeller gates a route to sellers (admins pass too).
func RequireSeller(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role == models.RoleSeller || role == models.RoleAdmin {
		return c.Next()
	}

	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Seller access required",
	})
}
