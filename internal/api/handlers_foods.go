package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateFood(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	if _, err := handler.foodService.CreateFood(name); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create food")
	}
	return redirectBack(c, "/foods")
}

func (handler *Handler) UpdateFood(c *fiber.Ctx) error {
	foodID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id must be a valid number")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	emoji := strings.TrimSpace(c.FormValue("emoji"))
	unitID := parseOptionalID(c.FormValue("unitId"))

	if err := handler.foodService.UpdateFood(foodID, name, emoji, unitID); err != nil {
		if errors.Is(err, services.ErrInvalidFoodInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid food input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update food")
	}
	return redirectBack(c, fmt.Sprintf("/foods/%d", foodID))
}

func (handler *Handler) CreateUnit(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	emoji := strings.TrimSpace(c.FormValue("emoji"))

	if _, err := handler.foodService.CreateUnit(name, emoji); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create unit")
	}
	return redirectBack(c, "/units")
}
