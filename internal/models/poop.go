package models

import "time"

const (
	PoopColorYellow = "yellow"
	PoopColorBrown  = "brown"
	PoopColorGreen  = "green"
	PoopColorBlack  = "black"
	PoopColorRed    = "red"
)

const (
	PoopConsistencyLiquid = "liquid"
	PoopConsistencySoft   = "soft"
	PoopConsistencyNormal = "normal"
	PoopConsistencyHard   = "hard"
)

type Poop struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BabyID      uint      `gorm:"not null;index" json:"babyId"`
	PoopTime    time.Time `gorm:"not null;index" json:"poopTime"`
	Color       string    `gorm:"not null" json:"color"`
	Consistency string    `gorm:"not null" json:"consistency"`
	Amount      int       `gorm:"not null" json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidPoopColor(color string) bool {
	switch color {
	case PoopColorYellow, PoopColorBrown, PoopColorGreen, PoopColorBlack, PoopColorRed:
		return true
	default:
		return false
	}
}

func IsValidPoopConsistency(consistency string) bool {
	switch consistency {
	case PoopConsistencyLiquid, PoopConsistencySoft, PoopConsistencyNormal, PoopConsistencyHard:
		return true
	default:
		return false
	}
}
