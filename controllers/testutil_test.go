package controllers

import (
	"testing"

	"backend/database"
	"backend/models"
	"backend/scraper"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the global database at a fresh in-memory sqlite.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	database.Migrate(db)
	database.DB = db
	return db
}

func seedCounty(t *testing.T, db *gorm.DB, name string) models.County {
	t.Helper()

	county := models.County{Name: name}
	require.NoError(t, db.Create(&county).Error)
	return county
}

func seedProfile(t *testing.T, db *gorm.DB, email, role string) models.Profile {
	t.Helper()

	profile := models.Profile{Email: email, FullName: "Test User", Role: role}
	require.NoError(t, profile.HashPassword("secret123"))
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

// useStaticSources configures the scrape globals the way main does.
func useStaticSources(t *testing.T, names ...string) {
	t.Helper()

	prevSources := Sources
	prevCounty := DefaultCounty
	prevFloor := FloorPrice
	t.Cleanup(func() {
		Sources = prevSources
		DefaultCounty = prevCounty
		FloorPrice = prevFloor
	})

	sources := make([]scraper.Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, scraper.NewStaticSource(name, scraper.DefaultCatalog(), 7.5, 10))
	}
	Sources = sources
	DefaultCounty = "Nairobi"
	FloorPrice = 10
}
