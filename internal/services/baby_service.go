package services

import (
	"errors"
	"time"

	"github.com/drobekapp/drobek/internal/models"
)

var (
	ErrBabyCreateFailed = errors.New("create baby failed")
	ErrInvalidBabyInput = errors.New("invalid baby input")
	ErrBabyNotFound     = errors.New("baby not found")
)

type BabyRepository interface {
	List() ([]models.Baby, error)
	FindByID(babyID uint) (models.Baby, bool, error)
	Create(baby *models.Baby) error
}

type BabyService struct {
	babies BabyRepository
}

func NewBabyService(babies BabyRepository) *BabyService {
	return &BabyService{babies: babies}
}

func (service *BabyService) CreateBaby(name string, birthday time.Time) (models.Baby, error) {
	if name == "" {
		return models.Baby{}, ErrInvalidBabyInput
	}
	baby := models.Baby{Name: name, Birthday: birthday}
	if err := service.babies.Create(&baby); err != nil {
		return models.Baby{}, ErrBabyCreateFailed
	}
	return baby, nil
}

func (service *BabyService) ListBabies() ([]models.Baby, error) {
	return service.babies.List()
}

func (service *BabyService) GetBaby(babyID uint) (models.Baby, error) {
	baby, found, err := service.babies.FindByID(babyID)
	if err != nil {
		return models.Baby{}, err
	}
	if !found {
		return models.Baby{}, ErrBabyNotFound
	}
	return baby, nil
}
