package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string

	// Optional plan advisor (disabled when the key is empty)
	GeminiAPIKey string

	// Price feed
	PriceFeedURL string

	// Telegram Config (required only for the bot binary)
	TelegramBotToken    string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables. A
// .env file in the working directory is loaded first when present.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:     getEnv("DATABASE_PATH", "data/planner.db"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		PriceFeedURL:     os.Getenv("PRICE_FEED_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	allowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	if allowUserIDStr != "" {
		id, err := strconv.ParseInt(allowUserIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOW_USER_ID must be numeric: %w", err)
		}
		cfg.TelegramAllowUserID = id
	}

	return cfg, nil
}

// ValidateForBot checks the settings the Telegram bot cannot run without.
func (c *Config) ValidateForBot() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramAllowUserID == 0 {
		return fmt.Errorf("TELEGRAM_ALLOW_USER_ID environment variable not set")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
