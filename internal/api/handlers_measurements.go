package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateMeasurement(c *fiber.Ctx) error {
	babyID, err := parseID(c.FormValue("babyId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "babyId must be a positive number")
	}

	weight, err := strconv.Atoi(strings.TrimSpace(c.FormValue("weight")))
	if err != nil || weight <= 0 {
		return apiError(c, fiber.StatusBadRequest, "weight must be a positive number of grams")
	}

	height, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("height")), 64)
	if err != nil || height <= 0 {
		return apiError(c, fiber.StatusBadRequest, "height must be a positive number of centimeters")
	}

	_, err = handler.measurementService.CreateMeasurement(services.MeasurementInput{
		BabyID: babyID,
		Weight: weight,
		Height: height,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidMeasurementInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid measurement input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create measurement")
	}

	return redirectBack(c, babyPath(babyID))
}

func (handler *Handler) DeleteMeasurement(c *fiber.Ctx) error {
	measurementID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id must be a valid number")
	}

	if err := handler.measurementService.DeleteMeasurement(measurementID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete measurement")
	}
	return c.JSON(fiber.Map{"success": true})
}
