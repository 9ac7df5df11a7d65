package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/drobekapp/drobek/internal/db"
	"github.com/drobekapp/drobek/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories

	babyService        *services.BabyService
	feedService        *services.FeedService
	measurementService *services.MeasurementService
	poopService        *services.PoopService
	foodService        *services.FoodService
	statsService       *services.StatsService

	secretKey    []byte
	pinHash      []byte
	location     *time.Location
	feedsPerDay  int
	cookieSecure bool
	templates    map[string]*template.Template
}

func NewHandler(database *gorm.DB, secret string, pin string, templateDir string, location *time.Location, feedsPerDay int, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if feedsPerDay <= 0 {
		feedsPerDay = services.DefaultFeedsPerDay
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	templates, err := parsePageTemplates(templateDir, location)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:                 database,
		repositories:       repositories,
		babyService:        services.NewBabyService(repositories.Babies),
		feedService:        services.NewFeedService(repositories.Feeds, location),
		measurementService: services.NewMeasurementService(repositories.Measurements, feedsPerDay),
		poopService:        services.NewPoopService(repositories.Poops, location),
		foodService:        services.NewFoodService(repositories.Foods),
		statsService:       services.NewStatsService(repositories.Feeds, repositories.Measurements, feedsPerDay),
		secretKey:          []byte(secret),
		pinHash:            pinHash,
		location:           location,
		feedsPerDay:        feedsPerDay,
		cookieSecure:       cookieSecure,
		templates:          templates,
	}, nil
}

func parsePageTemplates(templateDir string, location *time.Location) (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.In(location).Format(layout)
		},
		"formatTime": func(value time.Time) string {
			if value.IsZero() {
				return "-"
			}
			return value.In(location).Format("15:04")
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"deref": func(value *uint) uint {
			if value == nil {
				return 0
			}
			return *value
		},
		"feedTypeLabel": func(feedType string) string {
			if feedType == "additional" {
				return "Příkrm"
			}
			return "Mléko"
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"babies",
		"baby",
		"statistics",
		"foods",
		"food_edit",
		"units",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}
