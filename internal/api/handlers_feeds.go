package api

import (
	"errors"
	"strings"
	"time"

	"github.com/drobekapp/drobek/internal/models"
	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetFeedStats serves GET /api/feeds?babyId=&date= with the full
// per-day stats summary.
func (handler *Handler) GetFeedStats(c *fiber.Ctx) error {
	babyID, err := parseID(c.Query("babyId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "babyId must be a positive number")
	}

	day, err := parseDateTime(c.Query("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date format")
	}

	now := time.Now().In(handler.location)
	stats, err := handler.statsService.BuildDayStats(babyID, day, now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) CreateFeed(c *fiber.Ctx) error {
	babyID, err := parseID(c.FormValue("babyId"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "babyId must be a positive number")
	}

	feedTime, err := parseDateTime(c.FormValue("feedTime"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid feed time")
	}

	amount, err := parseAmount(c.FormValue("amount"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	feedType := strings.TrimSpace(c.FormValue("type"))
	if feedType == "" {
		feedType = models.FeedTypeMain
	}
	if !models.IsValidFeedType(feedType) {
		return apiError(c, fiber.StatusBadRequest, "type must be main or additional")
	}

	_, err = handler.feedService.CreateFeed(services.FeedInput{
		BabyID:   babyID,
		FeedTime: feedTime,
		Amount:   amount,
		Type:     feedType,
		FoodID:   parseOptionalID(c.FormValue("foodId")),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidFeedInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid feed input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create feed")
	}

	return redirectBack(c, babyPath(babyID))
}

func (handler *Handler) DeleteFeed(c *fiber.Ctx) error {
	feedID, err := parseID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id must be a valid number")
	}

	if err := handler.feedService.DeleteFeed(feedID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete feed")
	}
	return c.JSON(fiber.Map{"success": true})
}
