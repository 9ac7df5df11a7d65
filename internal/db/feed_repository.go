package db

import (
	"time"

	"github.com/drobekapp/drobek/internal/models"
	"gorm.io/gorm"
)

type FeedRepository struct {
	database *gorm.DB
}

func NewFeedRepository(database *gorm.DB) *FeedRepository {
	return &FeedRepository{database: database}
}

// ListByBabyWindow returns the feeds in the half-open window
// [start, end), ascending by feed time.
func (repo *FeedRepository) ListByBabyWindow(babyID uint, start time.Time, end time.Time) ([]models.Feed, error) {
	feeds := make([]models.Feed, 0)
	if err := repo.database.
		Preload("Food").
		Preload("Food.Unit").
		Where("baby_id = ? AND feed_time >= ? AND feed_time < ?", babyID, start, end).
		Order("feed_time ASC, id ASC").
		Find(&feeds).Error; err != nil {
		return nil, err
	}
	return feeds, nil
}

func (repo *FeedRepository) ListByBaby(babyID uint) ([]models.Feed, error) {
	feeds := make([]models.Feed, 0)
	if err := repo.database.
		Where("baby_id = ?", babyID).
		Order("feed_time ASC, id ASC").
		Find(&feeds).Error; err != nil {
		return nil, err
	}
	return feeds, nil
}

func (repo *FeedRepository) Create(feed *models.Feed) error {
	return repo.database.Create(feed).Error
}

func (repo *FeedRepository) DeleteByID(feedID uint) error {
	return repo.database.Delete(&models.Feed{}, feedID).Error
}
