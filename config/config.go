package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all process-wide settings. It is loaded once in main and
// passed explicitly to every component that needs it.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Port        string
	Env         string
}

const defaultTokenTTLMinutes = 30

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    defaultTokenTTLMinutes * time.Minute,
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if cfg.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET not set, using development default")
		cfg.JWTSecret = "default-dev-secret-change-me"
	}

	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %q", raw)
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
