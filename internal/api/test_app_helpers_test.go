package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/drobekapp/drobek/internal/db"
	"github.com/drobekapp/drobek/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const testPIN = "1234"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	databasePath := filepath.Join(t.TempDir(), "drobek-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", testPIN, templatesDir, time.UTC, 8, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func loginAndExtractSessionCookie(t *testing.T, app *fiber.App) string {
	t.Helper()

	form := url.Values{"pin": {testPIN}}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("session cookie is missing in login response")
	return ""
}

func createTestBaby(t *testing.T, database *gorm.DB, name string) models.Baby {
	t.Helper()

	baby := models.Baby{Name: name, Birthday: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)}
	if err := database.Create(&baby).Error; err != nil {
		t.Fatalf("create baby: %v", err)
	}
	return baby
}

func createTestFeed(t *testing.T, database *gorm.DB, babyID uint, feedTime time.Time, amount int) models.Feed {
	t.Helper()

	feed := models.Feed{BabyID: babyID, FeedTime: feedTime, Amount: amount, Type: models.FeedTypeMain}
	if err := database.Create(&feed).Error; err != nil {
		t.Fatalf("create feed: %v", err)
	}
	return feed
}

func createTestMeasurement(t *testing.T, database *gorm.DB, babyID uint, weightGrams int) models.Measurement {
	t.Helper()

	measurement := models.Measurement{
		BabyID:            babyID,
		Weight:            weightGrams,
		Height:            54,
		DailyMilkAmount:   714,
		FeedsPerDay:       8,
		AverageFeedAmount: 89,
	}
	if err := database.Create(&measurement).Error; err != nil {
		t.Fatalf("create measurement: %v", err)
	}
	return measurement
}
