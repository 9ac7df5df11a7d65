package api

import (
	"errors"
	"time"

	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowBabies(c *fiber.Ctx) error {
	babies, err := handler.babyService.ListBabies()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load babies")
	}
	return handler.render(c, "babies", fiber.Map{
		"Title":  "Drobek",
		"Babies": babies,
	})
}

// ShowBaby renders the daily overview: the selected day's feeds and
// stats, the feed form, and the latest measurement targets. The day
// defaults to today in the reference timezone and can be navigated via
// ?date=YYYY-MM-DD.
func (handler *Handler) ShowBaby(c *fiber.Ctx) error {
	babyID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid baby id")
	}

	baby, err := handler.babyService.GetBaby(babyID)
	if err != nil {
		if errors.Is(err, services.ErrBabyNotFound) {
			return handler.NotFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load baby")
	}

	now := time.Now().In(handler.location)
	day := services.DateAtLocation(now, handler.location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDateTime(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date format")
		}
		day = services.DateAtLocation(parsed, handler.location)
	}

	stats, err := handler.statsService.BuildDayStats(babyID, day, now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed stats")
	}

	latestMeasurement, err := handler.measurementService.LatestMeasurement(babyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load measurement")
	}

	averageFeedsPerDay, err := handler.statsService.AverageFeedsPerDay(babyID, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed history")
	}

	foods, err := handler.foodService.ListFoods()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}

	return handler.render(c, "baby", fiber.Map{
		"Title":              baby.Name,
		"Baby":               baby,
		"Day":                day,
		"DayString":          day.Format("2006-01-02"),
		"PrevDayString":      day.AddDate(0, 0, -1).Format("2006-01-02"),
		"NextDayString":      day.AddDate(0, 0, 1).Format("2006-01-02"),
		"IsToday":            day.Equal(services.DateAtLocation(now, handler.location)),
		"Stats":              stats,
		"LatestMeasurement":  latestMeasurement,
		"AverageFeedsPerDay": averageFeedsPerDay,
		"Foods":              foods,
	})
}

// ShowStatistics renders growth measurements and the diaper log.
func (handler *Handler) ShowStatistics(c *fiber.Ctx) error {
	babyID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid baby id")
	}

	baby, err := handler.babyService.GetBaby(babyID)
	if err != nil {
		if errors.Is(err, services.ErrBabyNotFound) {
			return handler.NotFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load baby")
	}

	measurements, err := handler.measurementService.ListMeasurements(babyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load measurements")
	}

	poops, err := handler.poopService.ListPoops(babyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load poops")
	}

	now := time.Now().In(handler.location)
	poopsToday, err := handler.poopService.CountPoopsForDay(babyID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load poops")
	}

	return handler.render(c, "statistics", fiber.Map{
		"Title":        baby.Name,
		"Baby":         baby,
		"Measurements": measurements,
		"Poops":        poops,
		"PoopsToday":   poopsToday,
	})
}

func (handler *Handler) ShowFoods(c *fiber.Ctx) error {
	foods, err := handler.foodService.ListFoods()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}
	return handler.render(c, "foods", fiber.Map{
		"Title": "Jídla",
		"Foods": foods,
	})
}

func (handler *Handler) ShowFoodEdit(c *fiber.Ctx) error {
	foodID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid food id")
	}

	food, err := handler.foodService.GetFood(foodID)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			return handler.NotFound(c)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load food")
	}

	units, err := handler.foodService.ListUnits()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load units")
	}

	return handler.render(c, "food_edit", fiber.Map{
		"Title": food.Name,
		"Food":  food,
		"Units": units,
	})
}

func (handler *Handler) ShowUnits(c *fiber.Ctx) error {
	units, err := handler.foodService.ListUnits()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load units")
	}
	return handler.render(c, "units", fiber.Map{
		"Title": "Jednotky",
		"Units": units,
	})
}
