package models

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string      `json:"name" gorm:"not null;uniqueIndex:idx_categories_name"`
	Description string      `json:"description"`
	Commodities []Commodity `json:"commodities,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Migrate Category table
func MigrateCategory(db *gorm.DB) {
	if db.Migrator().HasTable(&Category{}) {
		fmt.Println("✅ Category table already exists, skipping migration.")
		return
	}

	if err := db.AutoMigrate(&Category{}); err != nil {
		log.Fatalf("❌ Failed to migrate Category table: %v", err)
	}

	fmt.Println("✅ Category table migrated successfully.")
}
