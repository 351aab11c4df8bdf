package controllers

import (
	"time"

	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

// Fetch the authenticated seller's inventory
func GetInventory(c *fiber.Ctx) error {
	sellerID := c.Locals("user_id").(string)

	var items []models.Inventory
	if err := database.DB.Preload("Commodity").
		Where("seller_id = ?", sellerID).
		Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory"})
	}

	return c.JSON(items)
}

type InventoryInput struct {
	CommodityID string  `json:"commodity_id"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

func CreateInventory(c *fiber.Ctx) error {
	sellerID := c.Locals("user_id").(string)

	var input InventoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.CommodityID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Commodity is required"})
	}

	var commodity models.Commodity
	if err := database.DB.First(&commodity, "id = ?", input.CommodityID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Commodity not found"})
	}

	item := models.Inventory{
		CommodityID: input.CommodityID,
		SellerID:    sellerID,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		LastUpdated: time.Now(),
	}
	if item.Unit == "" {
		item.Unit = commodity.Unit
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create inventory item"})
	}

	return c.Status(201).JSON(item)
}

func UpdateInventory(c *fiber.Ctx) error {
	sellerID := c.Locals("user_id").(string)
	id := c.Params("id")

	var item models.Inventory
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	if item.SellerID != sellerID {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied for this inventory item"})
	}

	var input InventoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	item.Quantity = input.Quantity
	if input.Unit != "" {
		item.Unit = input.Unit
	}
	item.LastUpdated = time.Now()

	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update inventory item"})
	}

	return c.JSON(item)
}

func DeleteInventory(c *fiber.Ctx) error {
	sellerID := c.Locals("user_id").(string)
	id := c.Params("id")

	var item models.Inventory
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	if item.SellerID != sellerID {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied for this inventory item"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete inventory item"})
	}

	return c.JSON(fiber.Map{"message": "Inventory item deleted successfully"})
}
