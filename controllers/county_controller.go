package controllers

import (
	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

// Fetch all counties, alphabetical
func GetCounties(c *fiber.Ctx) error {
	var counties []models.County
	if err := database.DB.Order("name ASC").Find(&counties).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch counties"})
	}

	if len(counties) == 0 {
		return c.JSON([]models.County{})
	}

	return c.JSON(counties)
}

func GetCountyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var county models.County
	if err := database.DB.First(&county, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "County not found"})
	}
	return c.JSON(county)
}
