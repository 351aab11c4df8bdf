package models

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Commodity struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"not null"`
	Unit        string    `json:"unit" gorm:"default:kg"`
	CategoryID  *string   `json:"category_id" gorm:"type:varchar(36)"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsNew       bool      `json:"is_new" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Commodity) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Migrate Commodity table
func MigrateCommodity(db *gorm.DB) {
	if db.Migrator().HasTable(&Commodity{}) {
		log.Println("✅ Commodity table already exists. Skipping migration.")
		return
	}

	if err := db.AutoMigrate(&Commodity{}); err != nil {
		log.Fatalf("❌ Failed to migrate Commodity table: %v", err)
	}

	log.Println("✅ Commodity table migrated successfully.")
}
