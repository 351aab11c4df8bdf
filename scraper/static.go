package scraper

import (
	"context"
	"math"
	"math/rand/v2"
)

// StaticSource serves a fixed catalog with a bounded random offset applied
// uniformly to every item of a run, so repeated runs produce time-varying
// prices without an external fetch.
type StaticSource struct {
	name      string
	catalog   []CatalogItem
	maxOffset float64
	floor     float64
}

func NewStaticSource(name string, catalog []CatalogItem, maxOffset, floor float64) *StaticSource {
	return &StaticSource{
		name:      name,
		catalog:   catalog,
		maxOffset: maxOffset,
		floor:     floor,
	}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) Fetch(ctx context.Context) ([]Item, error) {
	// One offset per run, shared by every item of this market.
	offset := (rand.Float64()*2 - 1) * s.maxOffset

	items := make([]Item, 0, len(s.catalog))
	for _, entry := range s.catalog {
		items = append(items, Item{
			Name:     entry.Name,
			Price:    ClampPrice(entry.BasePrice+offset, s.floor),
			Unit:     entry.Unit,
			Category: entry.Category,
		})
	}
	return items, nil
}

// ClampPrice keeps a perturbed price at or above the floor, rounded to
// 2 decimals.
func ClampPrice(price, floor float64) float64 {
	return math.Round(math.Max(floor, price)*100) / 100
}
