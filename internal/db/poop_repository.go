package db

import (
	"time"

	"github.com/drobekapp/drobek/internal/models"
	"gorm.io/gorm"
)

type PoopRepository struct {
	database *gorm.DB
}

func NewPoopRepository(database *gorm.DB) *PoopRepository {
	return &PoopRepository{database: database}
}

func (repo *PoopRepository) ListByBaby(babyID uint) ([]models.Poop, error) {
	poops := make([]models.Poop, 0)
	if err := repo.database.
		Where("baby_id = ?", babyID).
		Order("poop_time DESC, id DESC").
		Find(&poops).Error; err != nil {
		return nil, err
	}
	return poops, nil
}

func (repo *PoopRepository) CountByBabyWindow(babyID uint, start time.Time, end time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Poop{}).
		Where("baby_id = ? AND poop_time >= ? AND poop_time < ?", babyID, start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PoopRepository) Create(poop *models.Poop) error {
	return repo.database.Create(poop).Error
}

func (repo *PoopRepository) DeleteByID(poopID uint) error {
	return repo.database.Delete(&models.Poop{}, poopID).Error
}
