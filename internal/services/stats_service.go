package services

import (
	"math"
	"time"

	"github.com/drobekapp/drobek/internal/models"
)

type StatsFeedReader interface {
	ListByBabyWindow(babyID uint, start time.Time, end time.Time) ([]models.Feed, error)
	ListByBaby(babyID uint) ([]models.Feed, error)
}

type StatsMeasurementReader interface {
	LatestByBaby(babyID uint) (models.Measurement, bool, error)
}

// StatsService resolves a day window, loads that day's feeds and the
// latest measurement, and folds them into a FeedStats summary.
type StatsService struct {
	feeds        StatsFeedReader
	measurements StatsMeasurementReader
	feedsPerDay  int
}

func NewStatsService(feeds StatsFeedReader, measurements StatsMeasurementReader, feedsPerDay int) *StatsService {
	if feedsPerDay <= 0 {
		feedsPerDay = DefaultFeedsPerDay
	}
	return &StatsService{
		feeds:        feeds,
		measurements: measurements,
		feedsPerDay:  feedsPerDay,
	}
}

func (service *StatsService) FeedsPerDay() int {
	return service.feedsPerDay
}

// BuildDayStats computes the stats summary for one baby and one
// calendar day of the reference timezone.
func (service *StatsService) BuildDayStats(babyID uint, day time.Time, now time.Time, location *time.Location) (FeedStats, error) {
	start, end := DayWindow(day, location)
	feeds, err := service.feeds.ListByBabyWindow(babyID, start, end)
	if err != nil {
		return FeedStats{}, err
	}

	var latest *models.Measurement
	measurement, found, err := service.measurements.LatestByBaby(babyID)
	if err != nil {
		return FeedStats{}, err
	}
	if found {
		latest = &measurement
	}

	return BuildFeedStats(feeds, latest, service.feedsPerDay, now), nil
}

// AverageFeedsPerDay reports the observed mean number of feeds across
// every calendar day that has at least one recorded feed.
func (service *StatsService) AverageFeedsPerDay(babyID uint, location *time.Location) (int, error) {
	feeds, err := service.feeds.ListByBaby(babyID)
	if err != nil {
		return 0, err
	}
	return ObservedAverageFeedsPerDay(feeds, location), nil
}

func ObservedAverageFeedsPerDay(feeds []models.Feed, location *time.Location) int {
	if len(feeds) == 0 {
		return 0
	}
	uniqueDays := make(map[string]struct{}, len(feeds))
	for _, feed := range feeds {
		uniqueDays[DateAtLocation(feed.FeedTime, location).Format("2006-01-02")] = struct{}{}
	}
	return int(math.Round(float64(len(feeds)) / float64(len(uniqueDays))))
}
