package models

import "time"

// Measurement is a point-in-time growth snapshot. DailyMilkAmount,
// FeedsPerDay and AverageFeedAmount are computed once at creation from
// the then-current configuration and never recomputed afterwards.
type Measurement struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	BabyID            uint      `gorm:"not null;index" json:"babyId"`
	Weight            int       `gorm:"not null" json:"weight"`
	Height            float64   `gorm:"not null" json:"height"`
	DailyMilkAmount   int       `gorm:"not null" json:"dailyMilkAmount"`
	FeedsPerDay       int       `gorm:"not null" json:"feedsPerDay"`
	AverageFeedAmount int       `gorm:"not null" json:"averageFeedAmount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
