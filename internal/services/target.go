package services

import "math"

// MilkFactorPerKilogram is the daily milk requirement in milliliters
// per kilogram of body weight.
const MilkFactorPerKilogram = 170

const DefaultFeedsPerDay = 8

// DailyMilkTarget derives the daily milk amount in milliliters from a
// weight in grams: round(weight_kg * 170).
func DailyMilkTarget(weightGrams int) int {
	return int(math.Round(float64(weightGrams) / 1000 * MilkFactorPerKilogram))
}

// AverageFeedAmount splits a daily target across the configured number
// of feeds. Both values are snapshotted onto a measurement at creation
// and never recomputed when the configuration changes later.
func AverageFeedAmount(dailyMilkAmount int, feedsPerDay int) int {
	if feedsPerDay <= 0 {
		return 0
	}
	return int(math.Round(float64(dailyMilkAmount) / float64(feedsPerDay)))
}
