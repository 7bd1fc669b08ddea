// Package config provides configuration management for the bot.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	QuillAPIKey    string
	QuillAPIURL    string
	WalletAddress  string
	WalletNetwork  string
	WalletDataFile string
	TelegramToken  string
}

// Load reads configuration from the environment, with .env honored when
// present, and sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		QuillAPIKey:    os.Getenv("QUILLAI_API_KEY"),
		QuillAPIURL:    getEnvOrDefault("QUILL_API_URL", "https://check-api.quillai.network/api/v1/tokens/information"),
		WalletAddress:  os.Getenv("WALLET_ADDRESS"),
		WalletNetwork:  getEnvOrDefault("WALLET_NETWORK", "base"),
		WalletDataFile: getEnvOrDefault("WALLET_DATA_FILE", "wallet_data.json"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
