package db

import (
	"github.com/drobekapp/drobek/internal/models"
	"gorm.io/gorm"
)

type MeasurementRepository struct {
	database *gorm.DB
}

func NewMeasurementRepository(database *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{database: database}
}

func (repo *MeasurementRepository) ListByBaby(babyID uint) ([]models.Measurement, error) {
	measurements := make([]models.Measurement, 0)
	if err := repo.database.
		Where("baby_id = ?", babyID).
		Order("created_at DESC, id DESC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

// LatestByBaby returns the most recently created measurement; the
// latest one wins for every target calculation.
func (repo *MeasurementRepository) LatestByBaby(babyID uint) (models.Measurement, bool, error) {
	measurement := models.Measurement{}
	result := repo.database.
		Where("baby_id = ?", babyID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&measurement)
	if result.Error != nil {
		return models.Measurement{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Measurement{}, false, nil
	}
	return measurement, true, nil
}

func (repo *MeasurementRepository) Create(measurement *models.Measurement) error {
	return repo.database.Create(measurement).Error
}

func (repo *MeasurementRepository) DeleteByID(measurementID uint) error {
	return repo.database.Delete(&models.Measurement{}, measurementID).Error
}
