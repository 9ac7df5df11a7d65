package models

import "time"

// Feed types form a closed two-variant tag. Main feeds count toward the
// daily milk target and next-feed scheduling; additional feeds (solids,
// snacks) do not drive scheduling.
const (
	FeedTypeMain       = "main"
	FeedTypeAdditional = "additional"
)

type Feed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BabyID    uint      `gorm:"not null;index" json:"babyId"`
	FeedTime  time.Time `gorm:"not null;index" json:"feedTime"`
	Amount    int       `gorm:"not null" json:"amount"`
	Type      string    `gorm:"not null;default:main" json:"type"`
	FoodID    *uint     `json:"foodId"`
	Food      *Food     `json:"food,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidFeedType(feedType string) bool {
	switch feedType {
	case FeedTypeMain, FeedTypeAdditional:
		return true
	default:
		return false
	}
}
