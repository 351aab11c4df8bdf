package controllers

import (
	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

func GetAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var alerts []models.PriceAlert
	if err := database.DB.Preload("Commodity").Preload("County").
		Where("user_id = ?", userID).
		Find(&alerts).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch alerts"})
	}

	return c.JSON(alerts)
}

type AlertInput struct {
	CommodityID    string   `json:"commodity_id"`
	CountyID       *string  `json:"county_id"`
	AlertType      string   `json:"alert_type"`
	ThresholdPrice *float64 `json:"threshold_price"`
	IsActive       *bool    `json:"is_active"`
}

func CreateAlert(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var input AlertInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.CommodityID == "" || input.ThresholdPrice == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Commodity and threshold price are required"})
	}
	if input.AlertType != models.AlertAbove && input.AlertType != models.AlertBelow {
		return c.Status(400).JSON(fiber.Map{"error": "Alert type must be above or below"})
	}

	alert := models.PriceAlert{
		UserID:         userID,
		CommodityID:    input.CommodityID,
		CountyID:       input.CountyID,
		AlertType:      input.AlertType,
		ThresholdPrice: input.ThresholdPrice,
		IsActive:       true,
	}

	if err := database.DB.Create(&alert).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create alert"})
	}

	return c.Status(201).JSON(alert)
}

func UpdateAlert(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	var alert models.PriceAlert
	if err := database.DB.First(&alert, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Alert not found"})
	}

	if alert.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied for this alert"})
	}

	var input AlertInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.ThresholdPrice != nil {
		alert.ThresholdPrice = input.ThresholdPrice
	}
	if input.AlertType != "" {
		alert.AlertType = input.AlertType
	}
	if input.IsActive != nil {
		alert.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&alert).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update alert"})
	}

	return c.JSON(alert)
}

func DeleteAlert(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	var alert models.PriceAlert
	if err := database.DB.First(&alert, "id = ?", id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Alert not found"})
	}

	if alert.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied for this alert"})
	}

	if err := database.DB.Delete(&alert).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete alert"})
	}

	return c.JSON(fiber.Map{"message": "Alert deleted successfully"})
}

// GetTriggeredAlerts evaluates the user's active alerts against the
// latest observation for each alert's commodity (and county, if set).
func GetTriggeredAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var alerts []models.PriceAlert
	if err := database.DB.Preload("Commodity").Preload("County").
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&alerts).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch alerts"})
	}

	triggered := make([]fiber.Map, 0)
	for _, alert := range alerts {
		if alert.ThresholdPrice == nil {
			continue
		}

		query := database.DB.Where("commodity_id = ?", alert.CommodityID)
		if alert.CountyID != nil {
			query = query.Where("county_id = ?", *alert.CountyID)
		}

		var latest models.Price
		if err := query.Order("created_at DESC").First(&latest).Error; err != nil {
			continue
		}

		if AlertTriggered(alert.AlertType, latest.Price, *alert.ThresholdPrice) {
			triggered = append(triggered, fiber.Map{
				"alert":         alert,
				"current_price": latest.Price,
			})
		}
	}

	return c.JSON(triggered)
}

// AlertTriggered reports whether the current price crosses the threshold
// in the alert's direction.
func AlertTriggered(alertType string, current, threshold float64) bool {
	switch alertType {
	case models.AlertAbove:
		return current >= threshold
	case models.AlertBelow:
		return current <= threshold
	}
	return false
}
