package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)

	app.Get("/", handler.AuthRequired, handler.ShowBabies)
	app.Get("/babies", handler.AuthRequired, handler.ShowBabies)
	app.Get("/babies/:id", handler.AuthRequired, handler.ShowBaby)
	app.Get("/babies/:id/statistics", handler.AuthRequired, handler.ShowStatistics)
	app.Get("/foods", handler.AuthRequired, handler.ShowFoods)
	app.Get("/foods/:id", handler.AuthRequired, handler.ShowFoodEdit)
	app.Get("/units", handler.AuthRequired, handler.ShowUnits)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	feeds := api.Group("/feeds", handler.AuthRequired)
	feeds.Get("", handler.GetFeedStats)
	feeds.Post("", handler.CreateFeed)
	feeds.Delete("/:id", handler.DeleteFeed)

	measurements := api.Group("/measurements", handler.AuthRequired)
	measurements.Post("", handler.CreateMeasurement)
	measurements.Delete("/:id", handler.DeleteMeasurement)

	poops := api.Group("/poops", handler.AuthRequired)
	poops.Post("", handler.CreatePoop)
	poops.Delete("/:id", handler.DeletePoop)

	babies := api.Group("/babies", handler.AuthRequired)
	babies.Post("", handler.CreateBaby)

	foods := api.Group("/foods", handler.AuthRequired)
	foods.Post("", handler.CreateFood)
	foods.Post("/:id", handler.UpdateFood)

	units := api.Group("/units", handler.AuthRequired)
	units.Post("", handler.CreateUnit)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
