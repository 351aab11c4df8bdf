package models

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory is a seller's stock of one commodity.
type Inventory struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CommodityID string     `json:"commodity_id" gorm:"not null;type:varchar(36)"`
	Commodity   *Commodity `json:"commodity,omitempty" gorm:"foreignKey:CommodityID"`
	SellerID    string     `json:"seller_id" gorm:"not null;type:varchar(36);index"`
	Quantity    float64    `json:"quantity" gorm:"default:0"`
	Unit        string     `json:"unit" gorm:"default:kg"`
	LastUpdated time.Time  `json:"last_updated" gorm:"autoUpdateTime"`
}

func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func MigrateInventory(db *gorm.DB) {
	if !db.Migrator().HasTable(&Inventory{}) {
		if err := db.Migrator().CreateTable(&Inventory{}); err != nil {
			log.Fatalf("❌ Failed to create Inventory table: %v", err)
		}
	}
}
