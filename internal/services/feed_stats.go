package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/drobekapp/drobek/internal/models"
)

// StatFeed is one feed enriched with the elapsed time since the
// previous feed of the day, formatted HH:MM. The first feed of the day
// has no predecessor and carries null.
type StatFeed struct {
	models.Feed
	TimeSinceLastFeed *string `json:"timeSinceLastFeed"`
}

// FeedStats is the derived per-day summary. It is computed on demand
// and never persisted.
type FeedStats struct {
	Feeds                 []StatFeed `json:"feeds"`
	TotalMilk             int        `json:"totalMilk"`
	FeedCount             int        `json:"feedCount"`
	TargetMilk            int        `json:"targetMilk"`
	RemainingMilk         int        `json:"remainingMilk"`
	RemainingFeeds        int        `json:"remainingFeeds"`
	AverageAmount         int        `json:"averageAmount"`
	LastFeedTime          *time.Time `json:"lastFeedTime"`
	TimeSinceLastFeed     *string    `json:"timeSinceLastFeed"`
	RecommendedNextAmount int        `json:"recommendedNextAmount"`
	FeedsPerDay           int        `json:"feedsPerDay"`
}

// FormatInterval renders a whole-minute duration as zero-padded HH:MM.
// Hours are unbounded: 605 minutes renders as "10:05".
func FormatInterval(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesBetween returns the elapsed whole minutes between two
// instants, rounded to nearest.
func MinutesBetween(later time.Time, earlier time.Time) int {
	return int(math.Round(later.Sub(earlier).Minutes()))
}

// BuildFeedStats folds one day's feeds and the latest measurement into
// a FeedStats summary. It is a pure function of its inputs: now is
// injected by the caller and only affects TimeSinceLastFeed. Feeds are
// sorted defensively; callers usually pass them ordered already, but
// the result must not depend on insertion order.
func BuildFeedStats(feeds []models.Feed, latest *models.Measurement, feedsPerDay int, now time.Time) FeedStats {
	ordered := make([]models.Feed, len(feeds))
	copy(ordered, feeds)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].FeedTime.Equal(ordered[j].FeedTime) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].FeedTime.Before(ordered[j].FeedTime)
	})

	statFeeds := make([]StatFeed, 0, len(ordered))
	totalMilk := 0
	for index, feed := range ordered {
		var interval *string
		if index > 0 {
			formatted := FormatInterval(MinutesBetween(feed.FeedTime, ordered[index-1].FeedTime))
			interval = &formatted
		}
		statFeeds = append(statFeeds, StatFeed{Feed: feed, TimeSinceLastFeed: interval})
		totalMilk += feed.Amount
	}

	feedCount := len(ordered)
	targetMilk := 0
	if latest != nil {
		targetMilk = latest.DailyMilkAmount
	}
	remainingMilk := targetMilk - totalMilk
	remainingFeeds := feedsPerDay - feedCount

	averageAmount := 0
	if feedCount > 0 {
		averageAmount = int(math.Round(float64(totalMilk) / float64(feedCount)))
	}

	// When the day is already over quota this collapses to 0 even if
	// milk is still owed. Deliberate: there is no next slot to size.
	recommendedNextAmount := 0
	if remainingFeeds > 0 {
		recommendedNextAmount = int(math.Round(float64(remainingMilk) / float64(remainingFeeds)))
	}

	// Scheduling of the next main feed ignores additional feeds.
	var lastFeedTime *time.Time
	var timeSinceLastFeed *string
	for index := len(ordered) - 1; index >= 0; index-- {
		if ordered[index].Type != models.FeedTypeMain {
			continue
		}
		feedTime := ordered[index].FeedTime
		lastFeedTime = &feedTime
		formatted := FormatInterval(MinutesBetween(now, feedTime))
		timeSinceLastFeed = &formatted
		break
	}

	return FeedStats{
		Feeds:                 statFeeds,
		TotalMilk:             totalMilk,
		FeedCount:             feedCount,
		TargetMilk:            targetMilk,
		RemainingMilk:         remainingMilk,
		RemainingFeeds:        remainingFeeds,
		AverageAmount:         averageAmount,
		LastFeedTime:          lastFeedTime,
		TimeSinceLastFeed:     timeSinceLastFeed,
		RecommendedNextAmount: recommendedNextAmount,
		FeedsPerDay:           feedsPerDay,
	}
}
