package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	DataFile     string
	BaseCurrency string
	LogLevel     string
}

// Load reads configuration from a local .env file (when present) and the
// environment, with defaults suitable for local use.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables and defaults")
	}
	return &AppConfig{
		DataFile:     getEnv("NETWORTH_DATA_FILE", "networth.json"),
		BaseCurrency: getEnv("NETWORTH_BASE_CURRENCY", "USD"),
		LogLevel:     getEnv("NETWORTH_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
