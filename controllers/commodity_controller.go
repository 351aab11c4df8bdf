package controllers

import (
	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

// Fetch commodities with optional search and category filter
func GetCommodities(c *fiber.Ctx) error {
	var commodities []models.Commodity
	query := database.DB.Preload("Category")

	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if err := query.Order("name ASC").Find(&commodities).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch commodities"})
	}

	// With a county filter, attach the latest observation per commodity.
	countyID := c.Query("county_id")
	if countyID == "" {
		return c.JSON(commodities)
	}

	type commodityWithPrice struct {
		models.Commodity
		CurrentPrice *float64 `json:"current_price"`
	}

	result := make([]commodityWithPrice, 0, len(commodities))
	for _, commodity := range commodities {
		entry := commodityWithPrice{Commodity: commodity}

		var price models.Price
		if err := database.DB.
			Where("commodity_id = ? AND county_id = ?", commodity.ID, countyID).
			Order("created_at DESC").
			First(&price).Error; err == nil {
			entry.CurrentPrice = &price.Price
		}
		result = append(result, entry)
	}

	return c.JSON(result)
}

func GetCommodityByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var commodity models.Commodity
	if err := database.DB.Preload("Category").First(&commodity, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Commodity not found"})
	}
	return c.JSON(commodity)
}

// GetNewProducts lists recently added commodities, newest first
func GetNewProducts(c *fiber.Ctx) error {
	var commodities []models.Commodity
	if err := database.DB.Preload("Category").
		Where("is_new = ?", true).
		Order("created_at DESC").
		Find(&commodities).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch new products"})
	}
	return c.JSON(commodities)
}
