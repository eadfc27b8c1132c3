package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		os.Unsetenv("DATABASE_PATH")
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("TELEGRAM_ALLOW_USER_ID")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "data/planner.db" {
			t.Errorf("Expected default database path, got '%s'", cfg.DatabasePath)
		}
		if cfg.GeminiAPIKey != "" {
			t.Errorf("Expected empty Gemini key, got '%s'", cfg.GeminiAPIKey)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("DATABASE_PATH", "/tmp/test.db")
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("TELEGRAM_ALLOW_USER_ID", "12345")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "/tmp/test.db" {
			t.Errorf("Expected DatabasePath '/tmp/test.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
		if cfg.TelegramAllowUserID != 12345 {
			t.Errorf("Expected TelegramAllowUserID 12345, got %d", cfg.TelegramAllowUserID)
		}
	})

	t.Run("BadAllowUserID", func(t *testing.T) {
		t.Setenv("TELEGRAM_ALLOW_USER_ID", "not-a-number")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for a non-numeric TELEGRAM_ALLOW_USER_ID, got nil")
		}
	})
}

func TestValidateForBot(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		cfg := &Config{TelegramAllowUserID: 1}
		if err := cfg.ValidateForBot(); err == nil {
			t.Fatal("Expected an error for missing TELEGRAM_BOT_TOKEN, got nil")
		}
	})

	t.Run("MissingAllowUserID", func(t *testing.T) {
		cfg := &Config{TelegramBotToken: "token"}
		if err := cfg.ValidateForBot(); err == nil {
			t.Fatal("Expected an error for missing TELEGRAM_ALLOW_USER_ID, got nil")
		}
	})

	t.Run("Valid", func(t *testing.T) {
		cfg := &Config{TelegramBotToken: "token", TelegramAllowUserID: 1}
		if err := cfg.ValidateForBot(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	})
}
