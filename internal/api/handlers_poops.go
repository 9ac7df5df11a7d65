package api

import (
	"errors"
	"strings"

	"github.com/drobekapp/drobek/internal/models"
	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreatePoop(c *fiber.Ctx) error {
	babyID, err := parseID(c.FormValue("babyId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "babyId must be a positive number")
	}

	poopTime, err := parseDateTime(c.FormValue("poopTime"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid poop time")
	}

	amount, err := parseAmount(c.FormValue("amount"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	color := strings.ToLower(strings.TrimSpace(c.FormValue("color")))
	if !models.IsValidPoopColor(color) {
		return apiError(c, fiber.StatusBadRequest, "invalid color")
	}

	consistency := strings.ToLower(strings.TrimSpace(c.FormValue("consistency")))
	if !models.IsValidPoopConsistency(consistency) {
		return apiError(c, fiber.StatusBadRequest, "invalid consistency")
	}

	_, err = handler.poopService.CreatePoop(services.PoopInput{
		BabyID:      babyID,
		PoopTime:    poopTime,
		Color:       color,
		Consistency: consistency,
		Amount:      amount,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidPoopInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid poop input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create poop")
	}

	return redirectBack(c, babyPath(babyID)+"/statistics")
}

func (handler *Handler) DeletePoop(c *fiber.Ctx) error {
	poopID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id must be a valid number")
	}

	if err := handler.poopService.DeletePoop(poopID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete poop")
	}
	return c.JSON(fiber.Map{"success": true})
}
