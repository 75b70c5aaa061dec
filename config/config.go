package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	MongoURI      string
	PasetoSecret  string
	HolidayAPIURL string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: error loading .env file (might not exist in production): %v", err)
	}

	// Base64 URL-encoding of a 32 byte development key. Override in production.
	secretBase64 := getEnv("PASETO_SECRET", "c2Nob29sLW1hbmFnZW1lbnQtZGV2LXNlY3JldC1rZXk=")

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGOSTRING", ""),
		PasetoSecret:  secretBase64,
		HolidayAPIURL: getEnv("HOLIDAY_API_URL", "https://api-harilibur.vercel.app/api"),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
