package db

import (
	"github.com/drobekapp/drobek/internal/models"
	"gorm.io/gorm"
)

type BabyRepository struct {
	database *gorm.DB
}

func NewBabyRepository(database *gorm.DB) *BabyRepository {
	return &BabyRepository{database: database}
}

func (repo *BabyRepository) List() ([]models.Baby, error) {
	babies := make([]models.Baby, 0)
	if err := repo.database.Order("id ASC").Find(&babies).Error; err != nil {
		return nil, err
	}
	return babies, nil
}

func (repo *BabyRepository) FindByID(babyID uint) (models.Baby, bool, error) {
	baby := models.Baby{}
	result := repo.database.Limit(1).Find(&baby, babyID)
	if result.Error != nil {
		return models.Baby{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Baby{}, false, nil
	}
	return baby, true, nil
}

func (repo *BabyRepository) Create(baby *models.Baby) error {
	return repo.database.Create(baby).Error
}
