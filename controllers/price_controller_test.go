package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPriceApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/prices", GetPrices)
	app.Get("/api/prices/history/:commodity_id", GetPriceHistory)
	app.Get("/api/dashboard", GetDashboardData)
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()

	res, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), 10000)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
	return res.StatusCode
}

func insertPrice(t *testing.T, db *gorm.DB, commodityID, countyID string, value float64, at time.Time) {
	t.Helper()

	price := models.Price{
		CommodityID: commodityID,
		CountyID:    countyID,
		Price:       value,
		CreatedAt:   at,
	}
	require.NoError(t, db.Create(&price).Error)
}

func TestGetPriceHistoryCollapsesDuplicates(t *testing.T) {
	db := setupTestDB(t)
	county := seedCounty(t, db, "Nairobi")

	maize := models.Commodity{Name: "Maize", Unit: "kg"}
	require.NoError(t, db.Create(&maize).Error)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, value := range []float64{85.5, 85.5, 90, 90, 82} {
		insertPrice(t, db, maize.ID, county.ID, value, base.Add(time.Duration(i)*time.Hour))
	}

	var history []models.Price
	status := getJSON(t, newPriceApp(), "/api/prices/history/"+maize.ID+"?county_id="+county.ID, &history)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, history, 3)
	require.Equal(t, 85.5, history[0].Price)
	require.Equal(t, 90.0, history[1].Price)
	require.Equal(t, 82.0, history[2].Price)
}

func TestGetPriceHistoryNotFound(t *testing.T) {
	setupTestDB(t)

	var body map[string]any
	status := getJSON(t, newPriceApp(), "/api/prices/history/missing-id", &body)

	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body["error"], "No prices found")
}

func TestGetPricesFilters(t *testing.T) {
	db := setupTestDB(t)
	nairobi := seedCounty(t, db, "Nairobi")
	mombasa := seedCounty(t, db, "Mombasa")

	maize := models.Commodity{Name: "Maize", Unit: "kg"}
	rice := models.Commodity{Name: "Rice", Unit: "kg"}
	require.NoError(t, db.Create(&maize).Error)
	require.NoError(t, db.Create(&rice).Error)

	now := time.Now()
	insertPrice(t, db, maize.ID, nairobi.ID, 85.5, now)
	insertPrice(t, db, maize.ID, mombasa.ID, 92, now)
	insertPrice(t, db, rice.ID, nairobi.ID, 150, now)

	var prices []models.Price
	status := getJSON(t, newPriceApp(), "/api/prices?commodity_id="+maize.ID+"&county_id="+nairobi.ID, &prices)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, prices, 1)
	require.Equal(t, 85.5, prices[0].Price)
}

func TestGetDashboardData(t *testing.T) {
	db := setupTestDB(t)
	nairobi := seedCounty(t, db, "Nairobi")
	mombasa := seedCounty(t, db, "Mombasa")

	maize := models.Commodity{Name: "Maize", Unit: "kg"}
	beef := models.Commodity{Name: "Beef", Unit: "kg"}
	require.NoError(t, db.Create(&maize).Error)
	require.NoError(t, db.Create(&beef).Error)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	// Maize in Nairobi rose 80 -> 100, beef in Mombasa fell 650 -> 600.
	insertPrice(t, db, maize.ID, nairobi.ID, 80, base)
	insertPrice(t, db, maize.ID, nairobi.ID, 100, base.Add(time.Hour))
	insertPrice(t, db, beef.ID, mombasa.ID, 650, base)
	insertPrice(t, db, beef.ID, mombasa.ID, 600, base.Add(time.Hour))

	var dashboard struct {
		TotalCommodities int     `json:"total_commodities"`
		AveragePrice     float64 `json:"average_price"`
		BiggestRise      struct {
			Commodity     string  `json:"commodity"`
			ChangePercent float64 `json:"change_percent"`
		} `json:"biggest_rise"`
		BiggestDrop struct {
			Commodity string `json:"commodity"`
		} `json:"biggest_drop"`
		CountyAverages []struct {
			County   string  `json:"county"`
			AvgPrice float64 `json:"avg_price"`
		} `json:"county_averages"`
	}
	status := getJSON(t, newPriceApp(), "/api/dashboard", &dashboard)

	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 2, dashboard.TotalCommodities)
	require.InDelta(t, 350, dashboard.AveragePrice, 0.01)
	require.Equal(t, "Maize", dashboard.BiggestRise.Commodity)
	require.InDelta(t, 25, dashboard.BiggestRise.ChangePercent, 0.01)
	require.Equal(t, "Beef", dashboard.BiggestDrop.Commodity)
	require.Len(t, dashboard.CountyAverages, 2)

	for _, avg := range dashboard.CountyAverages {
		switch avg.County {
		case "Nairobi":
			require.InDelta(t, 100, avg.AvgPrice, 0.01)
		case "Mombasa":
			require.InDelta(t, 600, avg.AvgPrice, 0.01)
		default:
			t.Fatalf("unexpected county %s", avg.County)
		}
	}
}
