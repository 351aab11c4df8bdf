package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterScrapeRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Post("/scrape", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.ScrapePrices)
}
