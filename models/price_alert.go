package models

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertAbove = "above"
	AlertBelow = "below"
)

// PriceAlert fires when a commodity's latest price crosses the threshold.
type PriceAlert struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string     `json:"user_id" gorm:"not null;type:varchar(36);index"`
	CommodityID    string     `json:"commodity_id" gorm:"not null;type:varchar(36)"`
	Commodity      *Commodity `json:"commodity,omitempty" gorm:"foreignKey:CommodityID"`
	CountyID       *string    `json:"county_id" gorm:"type:varchar(36)"`
	County         *County    `json:"county,omitempty" gorm:"foreignKey:CountyID"`
	AlertType      string     `json:"alert_type" gorm:"not null"`
	ThresholdPrice *float64   `json:"threshold_price"`
	// No gorm default tag here: GORM drops zero-value fields that carry
	// one, which would silently store false as true.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *PriceAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func MigratePriceAlert(db *gorm.DB) {
	if !db.Migrator().HasTable(&PriceAlert{}) {
		if err := db.Migrator().CreateTable(&PriceAlert{}); err != nil {
			log.Fatalf("❌ Failed to create PriceAlert table: %v", err)
		}
	}
}
