package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// DatabasePath is the local SQLite file the schema is created in.
	DatabasePath string
	// DatabaseURL, when set, points at a PostgreSQL server instead.
	DatabaseURL string
	// DiagramPath is where the rendered ERD image is written.
	DiagramPath string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "instagram.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DiagramPath:  getEnv("DIAGRAM_PATH", "diagram.png"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
