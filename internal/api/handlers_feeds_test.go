package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/drobekapp/drobek/internal/models"
	"github.com/drobekapp/drobek/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getFeedStats(t *testing.T, app *fiber.App, cookie string, query string) (*http.Response, services.FeedStats) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, "/api/feeds?"+query, nil)
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})

	stats := services.FeedStats{}
	if response.StatusCode == http.StatusOK {
		if err := json.NewDecoder(response.Body).Decode(&stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
	}
	return response, stats
}

func TestGetFeedStatsValidation(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing babyId", query: "date=2026-02-01"},
		{name: "non numeric babyId", query: "babyId=abc&date=2026-02-01"},
		{name: "zero babyId", query: "babyId=0&date=2026-02-01"},
		{name: "missing date", query: "babyId=1"},
		{name: "malformed date", query: "babyId=1&date=yesterday"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response, _ := getFeedStats(t, app, cookie, testCase.query)
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestGetFeedStatsSummarizesDay(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)

	baby := createTestBaby(t, database, "Anička")
	createTestMeasurement(t, database, baby.ID, 4200)
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC), 100)
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC), 120)
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), 90)

	response, stats := getFeedStats(t, app, cookie, "babyId=1&date=2026-02-01")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	if stats.TotalMilk != 310 {
		t.Fatalf("expected totalMilk 310, got %d", stats.TotalMilk)
	}
	if stats.FeedCount != 3 {
		t.Fatalf("expected feedCount 3, got %d", stats.FeedCount)
	}
	if stats.TargetMilk != 714 {
		t.Fatalf("expected targetMilk 714, got %d", stats.TargetMilk)
	}
	if stats.RemainingMilk != 404 {
		t.Fatalf("expected remainingMilk 404, got %d", stats.RemainingMilk)
	}
	if stats.RemainingFeeds != 5 {
		t.Fatalf("expected remainingFeeds 5, got %d", stats.RemainingFeeds)
	}
	if stats.AverageAmount != 103 {
		t.Fatalf("expected averageAmount 103, got %d", stats.AverageAmount)
	}
	if len(stats.Feeds) != 3 {
		t.Fatalf("expected 3 feeds, got %d", len(stats.Feeds))
	}
	if stats.Feeds[0].TimeSinceLastFeed != nil {
		t.Fatal("first feed must carry no interval")
	}
	if got := *stats.Feeds[1].TimeSinceLastFeed; got != "03:30" {
		t.Fatalf("expected interval 03:30, got %q", got)
	}
}

func TestGetFeedStatsExcludesNeighboringDays(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)

	baby := createTestBaby(t, database, "Anička")
	// Midnight at the window start belongs to the day, midnight at the
	// end already belongs to the next one.
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 10)
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 23, 59, 0, 0, time.UTC), 20)
	createTestFeed(t, database, baby.ID, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), 40)
	createTestFeed(t, database, baby.ID, time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC), 80)

	response, stats := getFeedStats(t, app, cookie, "babyId=1&date=2026-02-01")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	if stats.FeedCount != 2 {
		t.Fatalf("expected 2 feeds inside the window, got %d", stats.FeedCount)
	}
	if stats.TotalMilk != 30 {
		t.Fatalf("expected totalMilk 30, got %d", stats.TotalMilk)
	}
}

func TestGetFeedStatsForEmptyDay(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)

	createTestBaby(t, database, "Anička")

	response, stats := getFeedStats(t, app, cookie, "babyId=1&date=2026-02-01")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	if stats.FeedCount != 0 || stats.TotalMilk != 0 {
		t.Fatalf("expected empty summary, got count %d total %d", stats.FeedCount, stats.TotalMilk)
	}
	if stats.LastFeedTime != nil {
		t.Fatal("expected no lastFeedTime for an empty day")
	}
	if stats.Feeds == nil {
		t.Fatal("expected feeds to serialize as an empty array, not null")
	}
}

func TestCreateFeedPersistsAndRedirects(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)
	baby := createTestBaby(t, database, "Anička")

	form := url.Values{
		"babyId":   {"1"},
		"feedTime": {"2026-02-01T06:30"},
		"amount":   {"110"},
		"type":     {"main"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/feeds", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected 303, got %d: %s", response.StatusCode, string(body))
	}
	if location := response.Header.Get("Location"); location != "/babies/1" {
		t.Fatalf("expected redirect to /babies/1, got %q", location)
	}

	var feeds []models.Feed
	if err := database.Where("baby_id = ?", baby.ID).Find(&feeds).Error; err != nil {
		t.Fatalf("load feeds: %v", err)
	}
	if len(feeds) != 1 {
		t.Fatalf("expected 1 stored feed, got %d", len(feeds))
	}
	if feeds[0].Amount != 110 || feeds[0].Type != models.FeedTypeMain {
		t.Fatalf("unexpected stored feed %+v", feeds[0])
	}
}

func TestCreateFeedDefaultsToMainType(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)
	createTestBaby(t, database, "Anička")

	form := url.Values{
		"babyId":   {"1"},
		"feedTime": {"2026-02-01 07:00"},
		"amount":   {"90"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/feeds", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}

	var feed models.Feed
	if err := database.First(&feed).Error; err != nil {
		t.Fatalf("load feed: %v", err)
	}
	if feed.Type != models.FeedTypeMain {
		t.Fatalf("expected default type main, got %q", feed.Type)
	}
}

func TestCreateFeedRejectsUnknownType(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)
	createTestBaby(t, database, "Anička")

	form := url.Values{
		"babyId":   {"1"},
		"feedTime": {"2026-02-01T07:00"},
		"amount":   {"90"},
		"type":     {"snack"},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/feeds", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestDeleteFeed(t *testing.T) {
	app, database := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)
	baby := createTestBaby(t, database, "Anička")
	feed := createTestFeed(t, database, baby.ID, time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC), 100)

	request := httptest.NewRequest(http.MethodDelete, "/api/feeds/1", nil)
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	body, _ := io.ReadAll(response.Body)
	if !strings.Contains(string(body), `"success":true`) {
		t.Fatalf("expected success response, got %s", string(body))
	}

	var count int64
	if err := database.Model(&models.Feed{}).Where("id = ?", feed.ID).Count(&count).Error; err != nil {
		t.Fatalf("count feeds: %v", err)
	}
	if count != 0 {
		t.Fatal("expected feed row to be deleted")
	}
}

func TestDeleteFeedRejectsInvalidID(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginAndExtractSessionCookie(t, app)

	request := httptest.NewRequest(http.MethodDelete, "/api/feeds/abc", nil)
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}
