package database

import (
	"fmt"
	"log"
	"os"

	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/reviews"
	"catalog-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is shared with the test setup, which runs against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},

		&catalog.Category{},
		&catalog.Genre{},
		&catalog.Title{},

		&reviews.Review{},
		&reviews.Comment{},
	)
}
