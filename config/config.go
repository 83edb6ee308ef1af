package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service. It is loaded once at
// process start and injected; nothing mutates it afterwards.
type Config struct {
	// Server settings
	Port string `json:"port"`

	// News source API settings
	NewsAPIKey string `json:"-"` // Don't expose in JSON

	// Summarization service settings
	CohereAPIKey string `json:"-"` // Don't expose in JSON
	CohereModel  string `json:"cohere_model"`

	// Redis settings (optional extraction cache)
	RedisAddr string `json:"redis_addr,omitempty"`
	RedisPass string `json:"-"`
	RedisDB   int    `json:"redis_db,omitempty"`
}

// Load reads configuration from environment variables and .env file.
// Missing credentials are not an error: the pipeline degrades (empty
// primary results, summarizer error string) rather than failing hard.
func Load() *Config {
	// Load .env file if exists
	_ = godotenv.Load()

	return &Config{
		Port:         GetEnvOrDefault("PORT", "8080"),
		NewsAPIKey:   GetEnvOrDefault("NEWSAPI_KEY", ""),
		CohereAPIKey: GetEnvOrDefault("COHERE_API_KEY", ""),
		CohereModel:  GetEnvOrDefault("COHERE_MODEL", "command-r-08-2024"),
		RedisAddr:    GetEnvOrDefault("REDIS_ADDR", ""),
		RedisPass:    GetEnvOrDefault("REDIS_PASS", ""),
		RedisDB:      getEnvOrDefaultInt("REDIS_DB", 0),
	}
}

// GetEnvOrDefault returns environment variable value or default if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
