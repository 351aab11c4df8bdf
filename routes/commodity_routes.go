package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterCommodityRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/commodities", controllers.GetCommodities)
	api.Get("/commodities/:id", controllers.GetCommodityByID)
	api.Get("/new-products", controllers.GetNewProducts)
}
