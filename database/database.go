package database

import (
	"backend/models"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global database instance
var DB *gorm.DB

// Connect opens the MySQL connection and migrates all models
func Connect(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("✅ Database connected successfully!")

	Migrate(DB)
}

// Migrate runs migrations for every model. Split out so tests can
// run it against their own database.
func Migrate(db *gorm.DB) {
	models.MigrateCategory(db)
	models.MigrateCommodity(db)
	models.MigrateCounty(db)
	models.MigratePrice(db)
	models.MigrateInventory(db)
	models.MigratePriceAlert(db)
	models.MigrateProfile(db)
	models.MigrateUserRole(db)

	fmt.Println("✅ Database migrated successfully!")
}
