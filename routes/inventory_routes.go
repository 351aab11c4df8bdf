package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterInventoryRoutes(app *fiber.App) {
	api := app.Group("/api/inventory", middleware.JWTMiddleware, middleware.RequireSeller)

	api.Get("/", controllers.GetInventory)
	api.Post("/", controllers.CreateInventory)
	api.Put("/:id", controllers.UpdateInventory)
	api.Delete("/:id", controllers.DeleteInventory)
}
