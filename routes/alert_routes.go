package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterAlertRoutes(app *fiber.App) {
	api := app.Group("/api/alerts", middleware.JWTMiddleware)

	api.Get("/", controllers.GetAlerts)
	api.Get("/triggered", controllers.GetTriggeredAlerts)
	api.Post("/", controllers.CreateAlert)
	api.Put("/:id", controllers.UpdateAlert)
	api.Delete("/:id", controllers.DeleteAlert)
}
