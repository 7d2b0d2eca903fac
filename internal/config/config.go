package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It follows the 12-factor app methodology by prioritizing environment variables.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	API    APIConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type MongoConfig struct {
	URI      string
	Database string
}

// APIConfig selects between the two historical response dialects: the JSON
// field carrying a user's exercise list, and how exercise dates are rendered.
type APIConfig struct {
	LogField  string
	DateStyle string
}

const (
	LogFieldLog       = "log"
	LogFieldExercises = "exercises"

	DateStyleHuman = "human"
	DateStyleISO   = "iso"
)

// LoadConfig loads configuration from environment variables.
// A .env file is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Mode: getEnv("APP_MODE", "debug"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "exercise_tracker"),
		},
		API: APIConfig{
			LogField:  getEnv("LOG_FIELD", LogFieldLog),
			DateStyle: getEnv("DATE_STYLE", DateStyleHuman),
		},
	}

	if cfg.API.LogField != LogFieldLog && cfg.API.LogField != LogFieldExercises {
		return nil, fmt.Errorf("invalid LOG_FIELD %q: must be %q or %q", cfg.API.LogField, LogFieldLog, LogFieldExercises)
	}
	if cfg.API.DateStyle != DateStyleHuman && cfg.API.DateStyle != DateStyleISO {
		return nil, fmt.Errorf("invalid DATE_STYLE %q: must be %q or %q", cfg.API.DateStyle, DateStyleHuman, DateStyleISO)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
