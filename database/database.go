package database

import (
	"log"

	"art-portfolio-back/config"
	"art-portfolio-back/internal/domain/portfolio"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the Postgres connection and migrates the portfolio tables. The
// handle is returned rather than stored in a package global so callers inject
// it into the store layer.
func Init() *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Required for gen_random_uuid() defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := db.AutoMigrate(
		&portfolio.Artwork{},
		&portfolio.Favorite{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	return db
}
