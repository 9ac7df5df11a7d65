package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func babyPath(babyID uint) string {
	return fmt.Sprintf("/babies/%d", babyID)
}

func (handler *Handler) CreateBaby(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	birthday, err := parseDateTime(c.FormValue("birthday"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid birthday")
	}

	baby, err := handler.babyService.CreateBaby(name, birthday)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBabyInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid baby input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create baby")
	}

	return redirectBack(c, babyPath(baby.ID))
}
