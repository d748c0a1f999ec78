package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	APIBaseURL string
	APITimeout time.Duration
	Database   DatabaseConfig
}

// DatabaseConfig holds session store connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeoutSec, err := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT_SECONDS must be a positive integer")
	}

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
		APITimeout: time.Duration(timeoutSec) * time.Second,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "nameswipe"),
			User:     getEnv("DB_USER", "nameswipe"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
