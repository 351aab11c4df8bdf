package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "Nairobi", cfg.Scrape.DefaultCounty)
	require.Equal(t, 7.5, cfg.Scrape.MaxOffset)
	require.Equal(t, 10.0, cfg.Scrape.FloorPrice)
	require.Equal(t, 6*time.Hour, cfg.Scrape.Interval)
	require.Contains(t, cfg.Counties, "Nairobi")
	require.Contains(t, cfg.Counties, "Mombasa")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_DSN", "user:pass@tcp(localhost:3306)/prices")
	t.Setenv("APP_SCRAPE_GEMINI_API_KEY", "test-key-123")
	t.Setenv("APP_SCRAPE_DEFAULT_COUNTY", "Mombasa")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "user:pass@tcp(localhost:3306)/prices", cfg.DSN)
	require.Equal(t, "test-key-123", cfg.Scrape.GeminiAPIKey)
	require.Equal(t, "Mombasa", cfg.Scrape.DefaultCounty)
}

func TestDefaultMarkets(t *testing.T) {
	markets := DefaultMarkets()
	require.Len(t, markets, 4)

	names := make([]string, 0, len(markets))
	for _, market := range markets {
		require.NotEmpty(t, market.URL)
		names = append(names, market.Name)
	}
	require.Equal(t, []string{"Naivas", "Carrefour", "Quickmart", "Chandarana"}, names)
}
