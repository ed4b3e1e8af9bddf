package main

import (
	"fmt"
	"log"

	"github.com/bandhive/backend/auth"
	"github.com/bandhive/backend/config"
	"github.com/bandhive/backend/database"
	"github.com/bandhive/backend/models"
	"github.com/joho/godotenv"
)

func strPtr(s string) *string {
	return &s
}

var sampleBands = []models.Band{
	{Name: "The Quiet Vandals", Description: strPtr("Garage rock four-piece")},
	{Name: "Velvet Meridian", Description: strPtr("Dream pop trio")},
	{Name: "Iron Harvest", Description: strPtr("Doom metal")},
	{Name: "Paper Satellites", Description: strPtr("Indie folk collective")},
	{Name: "Neon Causeway", Description: strPtr("Synthwave duo")},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	fmt.Println("🌱 Starting seed...")

	// Bootstrap admin user if missing
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hash, err := auth.HashPassword("changeme")
		if err != nil {
			log.Fatalf("❌ Failed to hash password: %v", err)
		}
		admin := models.User{
			Name:         "Administrator",
			Username:     "admin",
			Email:        "admin@example.com",
			PasswordHash: hash,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("❌ Failed to create admin user: %v", err)
		}
		log.Println("✅ Admin user seeded successfully")
	}

	created := 0
	for _, band := range sampleBands {
		var existing int64
		db.Model(&models.Band{}).Where("name = ?", band.Name).Count(&existing)
		if existing > 0 {
			continue
		}
		if err := db.Create(&band).Error; err != nil {
			log.Fatalf("❌ Failed to create band %q: %v", band.Name, err)
		}
		created++
	}

	fmt.Printf("✅ Seed complete: %d bands created\n", created)
}
