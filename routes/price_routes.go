package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterPriceRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/prices", controllers.GetPrices)
	api.Get("/prices/history/:commodity_id", controllers.GetPriceHistory)

	api.Get("/dashboard", controllers.GetDashboardData)
}
