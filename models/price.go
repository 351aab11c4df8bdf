package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Price is one append-only observation of a commodity's price in a county.
// Rows are never updated or deleted; the current price is the most recent
// row per (commodity, county). A nil SellerID marks a system-generated
// observation from the scraper.
type Price struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CommodityID string     `json:"commodity_id" gorm:"not null;type:varchar(36);index"`
	Commodity   *Commodity `json:"commodity,omitempty" gorm:"foreignKey:CommodityID"`
	CountyID    string     `json:"county_id" gorm:"not null;type:varchar(36);index"`
	County      *County    `json:"county,omitempty" gorm:"foreignKey:CountyID"`
	Price       float64    `json:"price" gorm:"not null"`
	ProductURL  *string    `json:"product_url"`
	SellerID    *string    `json:"seller_id" gorm:"type:varchar(36)"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Price) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func MigratePrice(db *gorm.DB) {
	db.AutoMigrate(&Price{})
}
