package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterCategoryRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/categories", controllers.GetCategories)
	api.Post("/categories", middleware.JWTMiddleware, middleware.RequireAdmin, controllers.CreateCategory)
}
