package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// redirectBack sends a mutation response: a redirect for plain form
// posts, a JSON ok for API clients. Create operations are
// fire-and-forget, so there is no body contract beyond this.
func redirectBack(c *fiber.Ctx, fallbackPath string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	target := sanitizeRedirectPath(c.Get("Referer"), fallbackPath)
	return c.Redirect(target, fiber.StatusSeeOther)
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	// Referer may be absolute; keep only a same-site path.
	if index := strings.Index(candidate, "://"); index >= 0 {
		rest := candidate[index+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return fallback
		}
		candidate = rest[slash:]
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	return candidate
}
