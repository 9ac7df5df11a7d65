package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type pinInput struct {
	PIN string `json:"pin" form:"pin"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.parseSessionToken(c.Cookies(authCookieName)) == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title": "Drobek",
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := pinInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	pin := strings.TrimSpace(input.PIN)
	if pin == "" {
		return apiError(c, fiber.StatusBadRequest, "pin is required")
	}
	if !handler.checkPIN(pin) {
		return apiError(c, fiber.StatusUnauthorized, "incorrect pin")
	}

	now := time.Now().In(handler.location)
	token, err := handler.issueSessionToken(now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, token, now)

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c, time.Now().In(handler.location))
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
