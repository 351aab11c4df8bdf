package controllers

import (
	"context"
	"fmt"
	"log"

	"backend/database"
	"backend/models"
	"backend/scraper"

	"github.com/gofiber/fiber/v2"
)

// Configured in main at startup.
var (
	Sources       []scraper.Source
	DefaultCounty = "Nairobi"
	FloorPrice    = 10.0
)

type ScrapeRequest struct {
	Supermarket string `json:"supermarket"`
	// Accepted for compatibility with the admin client, currently unused.
	Category string `json:"category"`
}

type ScrapedItem struct {
	Supermarket string  `json:"supermarket"`
	Item        string  `json:"item"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
}

// ScrapePrices ingests the configured markets' listings into the catalog.
// An empty supermarket field means all markets.
func ScrapePrices(c *fiber.Ctx) error {
	var req ScrapeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
		}
	}

	log.Printf("Scraping %s", marketLabel(req.Supermarket))

	results, err := RunScrape(c.UserContext(), req.Supermarket)
	if err != nil {
		log.Println("❌ Scrape failed:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"scraped": len(results),
		"items":   results,
	})
}

// RunScrape processes every configured market not excluded by the filter.
// It is shared between the admin trigger and the scheduler. Per-item and
// per-market failures are logged and skipped; a missing default county is
// fatal only when a single market was requested.
func RunScrape(ctx context.Context, supermarket string) ([]ScrapedItem, error) {
	singleMarket := supermarket != ""
	results := make([]ScrapedItem, 0)

	for _, source := range Sources {
		if singleMarket && source.Name() != supermarket {
			continue
		}

		var county models.County
		if err := database.DB.Where("name = ?", DefaultCounty).First(&county).Error; err != nil {
			if singleMarket {
				return nil, fmt.Errorf("%s county not found", DefaultCounty)
			}
			log.Printf("❌ %s county not found, skipping %s", DefaultCounty, source.Name())
			continue
		}

		items, err := source.Fetch(ctx)
		if err != nil {
			log.Printf("❌ Error scraping %s: %v", source.Name(), err)
			continue
		}
		log.Printf("Extracted %d items from %s", len(items), source.Name())

		for _, item := range items {
			price := scraper.ClampPrice(item.Price, FloorPrice)

			commodity, err := resolveCommodity(item, source.Name())
			if err != nil {
				log.Printf("❌ Skipping %s from %s: %v", item.Name, source.Name(), err)
				continue
			}

			row := models.Price{
				CommodityID: commodity.ID,
				CountyID:    county.ID,
				Price:       price,
				// seller_id stays null: system-generated observation
			}
			if item.ProductURL != "" {
				url := item.ProductURL
				row.ProductURL = &url
			}

			if err := database.DB.Create(&row).Error; err != nil {
				log.Printf("❌ Failed to insert price for %s: %v", item.Name, err)
				continue
			}

			results = append(results, ScrapedItem{
				Supermarket: source.Name(),
				Item:        item.Name,
				Price:       price,
				Unit:        item.Unit,
			})
		}
	}

	return results, nil
}

// resolveCommodity finds or lazily creates the item's category and
// commodity. Commodity names are matched case-insensitively across all
// markets so the same good observed anywhere maps to one row.
func resolveCommodity(item scraper.Item, marketName string) (*models.Commodity, error) {
	var category models.Category
	err := database.DB.Where("name = ?", item.Category).First(&category).Error
	if err != nil {
		category = models.Category{
			Name:        item.Category,
			Description: fmt.Sprintf("%s products", item.Category),
		}
		if err := database.DB.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to create category %s: %v", item.Category, err)
		}
	}

	var commodity models.Commodity
	err = database.DB.Where("LOWER(name) = LOWER(?)", item.Name).First(&commodity).Error
	if err == nil {
		return &commodity, nil
	}

	commodity = models.Commodity{
		Name:        item.Name,
		Unit:        item.Unit,
		CategoryID:  &category.ID,
		Description: fmt.Sprintf("%s from %s", item.Name, marketName),
		IsNew:       true,
	}
	if err := database.DB.Create(&commodity).Error; err != nil {
		return nil, fmt.Errorf("failed to create commodity %s: %v", item.Name, err)
	}
	return &commodity, nil
}

func marketLabel(supermarket string) string {
	if supermarket == "" {
		return "all supermarkets"
	}
	return supermarket
}
