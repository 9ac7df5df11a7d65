package services

import (
	"errors"

	"github.com/drobekapp/drobek/internal/models"
)

var (
	ErrMeasurementCreateFailed = errors.New("create measurement failed")
	ErrMeasurementDeleteFailed = errors.New("delete measurement failed")
	ErrInvalidMeasurementInput = errors.New("invalid measurement input")
)

type MeasurementInput struct {
	BabyID uint
	Weight int
	Height float64
}

type MeasurementRepository interface {
	ListByBaby(babyID uint) ([]models.Measurement, error)
	LatestByBaby(babyID uint) (models.Measurement, bool, error)
	Create(measurement *models.Measurement) error
	DeleteByID(measurementID uint) error
}

type MeasurementService struct {
	measurements MeasurementRepository
	feedsPerDay  int
}

func NewMeasurementService(measurements MeasurementRepository, feedsPerDay int) *MeasurementService {
	if feedsPerDay <= 0 {
		feedsPerDay = DefaultFeedsPerDay
	}
	return &MeasurementService{measurements: measurements, feedsPerDay: feedsPerDay}
}

// CreateMeasurement derives the daily milk target and per-feed average
// from the weight and the feeds-per-day configuration active right now,
// and stores them as snapshot fields on the new row.
func (service *MeasurementService) CreateMeasurement(payload MeasurementInput) (models.Measurement, error) {
	if payload.BabyID == 0 || payload.Weight <= 0 || payload.Height <= 0 {
		return models.Measurement{}, ErrInvalidMeasurementInput
	}

	dailyMilkAmount := DailyMilkTarget(payload.Weight)
	measurement := models.Measurement{
		BabyID:            payload.BabyID,
		Weight:            payload.Weight,
		Height:            payload.Height,
		DailyMilkAmount:   dailyMilkAmount,
		FeedsPerDay:       service.feedsPerDay,
		AverageFeedAmount: AverageFeedAmount(dailyMilkAmount, service.feedsPerDay),
	}
	if err := service.measurements.Create(&measurement); err != nil {
		return models.Measurement{}, ErrMeasurementCreateFailed
	}
	return measurement, nil
}

func (service *MeasurementService) DeleteMeasurement(measurementID uint) error {
	if err := service.measurements.DeleteByID(measurementID); err != nil {
		return ErrMeasurementDeleteFailed
	}
	return nil
}

func (service *MeasurementService) ListMeasurements(babyID uint) ([]models.Measurement, error) {
	return service.measurements.ListByBaby(babyID)
}

// LatestMeasurement returns the most recently created measurement,
// which is the one all target calculations use.
func (service *MeasurementService) LatestMeasurement(babyID uint) (*models.Measurement, error) {
	measurement, found, err := service.measurements.LatestByBaby(babyID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &measurement, nil
}
