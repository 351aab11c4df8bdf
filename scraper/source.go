package scraper

import (
	"context"

	"backend/config"
)

// Item is one listing extracted from a market, before it is normalized
// into categories, commodities and prices.
type Item struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ProductURL string  `json:"product_url"`
}

// Source provides the listings of one market. Implementations: the static
// catalog with synthetic noise, and the live page fetch with AI extraction.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Item, error)
}

// BuildSources returns one source per configured market. When a Gemini API
// key is configured the live sources are used, otherwise the static ones.
func BuildSources(cfg config.ScrapeConfig) ([]Source, error) {
	if cfg.GeminiAPIKey == "" {
		sources := make([]Source, 0, len(cfg.Markets))
		for _, market := range cfg.Markets {
			sources = append(sources, NewStaticSource(market.Name, DefaultCatalog(), cfg.MaxOffset, cfg.FloorPrice))
		}
		return sources, nil
	}

	extractor, err := NewExtractor(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	sources := make([]Source, 0, len(cfg.Markets))
	for _, market := range cfg.Markets {
		sources = append(sources, NewLiveSource(market, extractor))
	}
	return sources, nil
}
