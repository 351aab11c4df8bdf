package models

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// County is reference data, seeded at startup from config.
type County struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *County) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func MigrateCounty(db *gorm.DB) {
	if err := db.AutoMigrate(&County{}); err != nil {
		log.Fatalf("❌ Failed to migrate County table: %v", err)
	}
}

// SeedCounties inserts any configured county that is not in the table yet.
func SeedCounties(db *gorm.DB, names []string) {
	for _, name := range names {
		var existing County
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&County{Name: name}).Error; err != nil {
			log.Printf("❌ Failed to seed county %s: %v", name, err)
		}
	}
}
