package services

import (
	"errors"
	"time"

	"github.com/drobekapp/drobek/internal/models"
)

var (
	ErrFeedCreateFailed = errors.New("create feed failed")
	ErrFeedDeleteFailed = errors.New("delete feed failed")
	ErrInvalidFeedInput = errors.New("invalid feed input")
)

type FeedInput struct {
	BabyID   uint
	FeedTime time.Time
	Amount   int
	Type     string
	FoodID   *uint
}

type FeedRepository interface {
	ListByBabyWindow(babyID uint, start time.Time, end time.Time) ([]models.Feed, error)
	ListByBaby(babyID uint) ([]models.Feed, error)
	Create(feed *models.Feed) error
	DeleteByID(feedID uint) error
}

type FeedService struct {
	feeds    FeedRepository
	location *time.Location
}

func NewFeedService(feeds FeedRepository, location *time.Location) *FeedService {
	if location == nil {
		location = time.UTC
	}
	return &FeedService{feeds: feeds, location: location}
}

// CreateFeed writes one feed row. Timestamps are normalized to the
// reference timezone before storage so day windows filter them
// consistently.
func (service *FeedService) CreateFeed(payload FeedInput) (models.Feed, error) {
	if payload.BabyID == 0 || payload.Amount < 0 || !models.IsValidFeedType(payload.Type) {
		return models.Feed{}, ErrInvalidFeedInput
	}

	feed := models.Feed{
		BabyID:   payload.BabyID,
		FeedTime: payload.FeedTime.In(service.location),
		Amount:   payload.Amount,
		Type:     payload.Type,
		FoodID:   payload.FoodID,
	}
	if err := service.feeds.Create(&feed); err != nil {
		return models.Feed{}, ErrFeedCreateFailed
	}
	return feed, nil
}

func (service *FeedService) DeleteFeed(feedID uint) error {
	if err := service.feeds.DeleteByID(feedID); err != nil {
		return ErrFeedDeleteFailed
	}
	return nil
}

// ListDayFeeds returns the feeds of one calendar day, ascending by
// feed time.
func (service *FeedService) ListDayFeeds(babyID uint, day time.Time) ([]models.Feed, error) {
	start, end := DayWindow(day, service.location)
	return service.feeds.ListByBabyWindow(babyID, start, end)
}
