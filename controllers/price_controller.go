package controllers

import (
	"fmt"
	"time"

	"backend/database"
	"backend/models"

	"github.com/gofiber/fiber/v2"
)

func GetPrices(c *fiber.Ctx) error {
	var prices []models.Price
	query := database.DB.Preload("Commodity").Preload("County")

	if commodityID := c.Query("commodity_id"); commodityID != "" {
		query = query.Where("commodity_id = ?", commodityID)
	}
	if countyID := c.Query("county_id"); countyID != "" {
		query = query.Where("county_id = ?", countyID)
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("created_at BETWEEN ? AND ?", startDate+" 00:00:00", endDate+" 23:59:59")
	}

	if err := query.Order("created_at DESC").Find(&prices).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch prices"})
	}

	fmt.Printf("✅ Price rows returned: %d\n", len(prices))

	return c.JSON(prices)
}

// GetPriceHistory returns a commodity's chronological price history,
// consecutive duplicates collapsed so charts only show actual movement.
func GetPriceHistory(c *fiber.Ctx) error {
	commodityID := c.Params("commodity_id")
	if commodityID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Commodity ID is required"})
	}

	query := database.DB.Where("commodity_id = ?", commodityID)
	if countyID := c.Query("county_id"); countyID != "" {
		query = query.Where("county_id = ?", countyID)
	}

	var prices []models.Price
	if err := query.Order("created_at ASC").Find(&prices).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch price history"})
	}

	if len(prices) == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "No prices found for this commodity"})
	}

	var filtered []models.Price
	var lastPrice float64 = -1

	for _, p := range prices {
		if p.Price != lastPrice {
			filtered = append(filtered, p)
			lastPrice = p.Price
		}
	}

	return c.JSON(filtered)
}

type commodityCounty struct {
	CommodityID string
	CountyID    string
}

// GetDashboardData aggregates the dashboard figures: totals, extremes,
// biggest movers and per-county averages, all derived from the latest
// observation per (commodity, county).
func GetDashboardData(c *fiber.Ctx) error {
	var prices []models.Price
	if err := database.DB.Preload("Commodity").Preload("County").
		Order("created_at ASC").Find(&prices).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch prices"})
	}

	// Ordered ASC, so the map ends up holding the latest row per pair and
	// previous[] the one before it.
	latest := make(map[commodityCounty]models.Price)
	previous := make(map[commodityCounty]models.Price)

	for _, p := range prices {
		key := commodityCounty{p.CommodityID, p.CountyID}
		if last, ok := latest[key]; ok {
			previous[key] = last
		}
		latest[key] = p
	}

	uniqueCommodities := make(map[string]bool)
	countyTotals := make(map[string]float64)
	countyCounts := make(map[string]int)

	var totalPrice float64
	var mostExpensive, cheapest *models.Price
	var biggestRise, biggestDrop map[string]interface{}
	var maxRise, maxDrop float64

	for key, p := range latest {
		uniqueCommodities[p.CommodityID] = true
		totalPrice += p.Price

		if p.County != nil {
			countyTotals[p.County.Name] += p.Price
			countyCounts[p.County.Name]++
		}

		row := p
		if mostExpensive == nil || row.Price > mostExpensive.Price {
			mostExpensive = &row
		}
		if cheapest == nil || row.Price < cheapest.Price {
			cheapest = &row
		}

		prev, ok := previous[key]
		if !ok || prev.Price == 0 {
			continue
		}
		changePercent := ((p.Price - prev.Price) / prev.Price) * 100

		change := map[string]interface{}{
			"commodity_id":   p.CommodityID,
			"county_id":      p.CountyID,
			"previous_price": prev.Price,
			"current_price":  p.Price,
			"change_percent": changePercent,
			"change_date":    p.CreatedAt.Format(time.RFC3339),
		}
		if p.Commodity != nil {
			change["commodity"] = p.Commodity.Name
		}
		if p.County != nil {
			change["county"] = p.County.Name
		}

		if changePercent > maxRise {
			maxRise = changePercent
			biggestRise = change
		}
		if changePercent < maxDrop {
			maxDrop = changePercent
			biggestDrop = change
		}
	}

	averagePrice := 0.0
	if len(latest) > 0 {
		averagePrice = totalPrice / float64(len(latest))
	}

	countyAverages := make([]map[string]interface{}, 0, len(countyTotals))
	for county, total := range countyTotals {
		countyAverages = append(countyAverages, map[string]interface{}{
			"county":    county,
			"avg_price": total / float64(countyCounts[county]),
		})
	}

	return c.JSON(fiber.Map{
		"total_commodities": len(uniqueCommodities),
		"average_price":     averagePrice,
		"most_expensive":    mostExpensive,
		"cheapest":          cheapest,
		"biggest_rise":      biggestRise,
		"biggest_drop":      biggestDrop,
		"county_averages":   countyAverages,
	})
}
