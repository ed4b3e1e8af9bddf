package main

import (
	"fmt"
	"log"

	"github.com/bandhive/backend/config"
	"github.com/bandhive/backend/database"
	"github.com/bandhive/backend/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

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

	fmt.Println("Start cleanup...")

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Band{}).Error; err != nil {
		log.Fatalf("Failed to delete bands: %v", err)
	}

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		log.Fatalf("Failed to delete users: %v", err)
	}

	fmt.Println("✅ Cleanup complete")
}
