package db

import "gorm.io/gorm"

type Repositories struct {
	Babies       *BabyRepository
	Feeds        *FeedRepository
	Measurements *MeasurementRepository
	Poops        *PoopRepository
	Foods        *FoodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Babies:       NewBabyRepository(database),
		Feeds:        NewFeedRepository(database),
		Measurements: NewMeasurementRepository(database),
		Poops:        NewPoopRepository(database),
		Foods:        NewFoodRepository(database),
	}
}
