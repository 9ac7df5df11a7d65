package services

import (
	"errors"

	"github.com/drobekapp/drobek/internal/models"
)

var (
	ErrFoodCreateFailed = errors.New("create food failed")
	ErrFoodUpdateFailed = errors.New("update food failed")
	ErrFoodNotFound     = errors.New("food not found")
	ErrInvalidFoodInput = errors.New("invalid food input")
	ErrUnitCreateFailed = errors.New("create unit failed")
	ErrInvalidUnitInput = errors.New("invalid unit input")
)

type FoodRepository interface {
	ListFoods() ([]models.Food, error)
	FindFoodByID(foodID uint) (models.Food, bool, error)
	CreateFood(food *models.Food) error
	UpdateFood(foodID uint, name string, emoji string, unitID *uint) error
	ListUnits() ([]models.Unit, error)
	CreateUnit(unit *models.Unit) error
}

type FoodService struct {
	foods FoodRepository
}

func NewFoodService(foods FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

func (service *FoodService) CreateFood(name string) (models.Food, error) {
	if name == "" {
		return models.Food{}, ErrInvalidFoodInput
	}
	food := models.Food{Name: name}
	if err := service.foods.CreateFood(&food); err != nil {
		return models.Food{}, ErrFoodCreateFailed
	}
	return food, nil
}

func (service *FoodService) UpdateFood(foodID uint, name string, emoji string, unitID *uint) error {
	if foodID == 0 || name == "" {
		return ErrInvalidFoodInput
	}
	if err := service.foods.UpdateFood(foodID, name, emoji, unitID); err != nil {
		return ErrFoodUpdateFailed
	}
	return nil
}

func (service *FoodService) GetFood(foodID uint) (models.Food, error) {
	food, found, err := service.foods.FindFoodByID(foodID)
	if err != nil {
		return models.Food{}, err
	}
	if !found {
		return models.Food{}, ErrFoodNotFound
	}
	return food, nil
}

func (service *FoodService) ListFoods() ([]models.Food, error) {
	return service.foods.ListFoods()
}

func (service *FoodService) CreateUnit(name string, emoji string) (models.Unit, error) {
	if name == "" {
		return models.Unit{}, ErrInvalidUnitInput
	}
	unit := models.Unit{Name: name, Emoji: emoji}
	if err := service.foods.CreateUnit(&unit); err != nil {
		return models.Unit{}, ErrUnitCreateFailed
	}
	return unit, nil
}

func (service *FoodService) ListUnits() ([]models.Unit, error) {
	return service.foods.ListUnits()
}
