package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates every page and API route behind the shared PIN
// session. It is a convenience lock for a family device, not a
// security boundary.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if err := handler.parseSessionToken(c.Cookies(authCookieName)); err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}
