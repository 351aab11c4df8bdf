package routes

import (
	"backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterCountyRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/counties", controllers.GetCounties)
	api.Get("/counties/:id", controllers.GetCountyByID)
}
