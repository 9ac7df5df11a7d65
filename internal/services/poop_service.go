package services

import (
	"errors"
	"time"

	"github.com/drobekapp/drobek/internal/models"
)

var (
	ErrPoopCreateFailed = errors.New("create poop failed")
	ErrPoopDeleteFailed = errors.New("delete poop failed")
	ErrInvalidPoopInput = errors.New("invalid poop input")
)

type PoopInput struct {
	BabyID      uint
	PoopTime    time.Time
	Color       string
	Consistency string
	Amount      int
}

type PoopRepository interface {
	ListByBaby(babyID uint) ([]models.Poop, error)
	CountByBabyWindow(babyID uint, start time.Time, end time.Time) (int64, error)
	Create(poop *models.Poop) error
	DeleteByID(poopID uint) error
}

type PoopService struct {
	poops    PoopRepository
	location *time.Location
}

func NewPoopService(poops PoopRepository, location *time.Location) *PoopService {
	if location == nil {
		location = time.UTC
	}
	return &PoopService{poops: poops, location: location}
}

func (service *PoopService) CreatePoop(payload PoopInput) (models.Poop, error) {
	if payload.BabyID == 0 || payload.Amount < 0 ||
		!models.IsValidPoopColor(payload.Color) ||
		!models.IsValidPoopConsistency(payload.Consistency) {
		return models.Poop{}, ErrInvalidPoopInput
	}

	poop := models.Poop{
		BabyID:      payload.BabyID,
		PoopTime:    payload.PoopTime.In(service.location),
		Color:       payload.Color,
		Consistency: payload.Consistency,
		Amount:      payload.Amount,
	}
	if err := service.poops.Create(&poop); err != nil {
		return models.Poop{}, ErrPoopCreateFailed
	}
	return poop, nil
}

func (service *PoopService) DeletePoop(poopID uint) error {
	if err := service.poops.DeleteByID(poopID); err != nil {
		return ErrPoopDeleteFailed
	}
	return nil
}

func (service *PoopService) ListPoops(babyID uint) ([]models.Poop, error) {
	return service.poops.ListByBaby(babyID)
}

// CountPoopsForDay reports how many diaper events fall inside one
// calendar day of the reference timezone.
func (service *PoopService) CountPoopsForDay(babyID uint, day time.Time) (int64, error) {
	start, end := DayWindow(day, service.location)
	return service.poops.CountByBabyWindow(babyID, start, end)
}
