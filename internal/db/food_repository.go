package db

import (
	"github.com/drobekapp/drobek/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) ListFoods() ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := repo.database.Preload("Unit").Order("name ASC, id ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (repo *FoodRepository) FindFoodByID(foodID uint) (models.Food, bool, error) {
	food := models.Food{}
	result := repo.database.Preload("Unit").Limit(1).Find(&food, foodID)
	if result.Error != nil {
		return models.Food{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Food{}, false, nil
	}
	return food, true, nil
}

func (repo *FoodRepository) CreateFood(food *models.Food) error {
	return repo.database.Create(food).Error
}

func (repo *FoodRepository) UpdateFood(foodID uint, name string, emoji string, unitID *uint) error {
	return repo.database.Model(&models.Food{}).Where("id = ?", foodID).Updates(map[string]any{
		"name":    name,
		"emoji":   emoji,
		"unit_id": unitID,
	}).Error
}

func (repo *FoodRepository) ListUnits() ([]models.Unit, error) {
	units := make([]models.Unit, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (repo *FoodRepository) CreateUnit(unit *models.Unit) error {
	return repo.database.Create(unit).Error
}
