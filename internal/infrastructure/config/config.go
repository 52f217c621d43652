// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Flight data API
	FlightAPIKey     string
	FlightAPIBaseURL string
	FlightAPITimeout time.Duration

	// Gemini
	GeminiAPIKey      string
	GeminiModel       string
	GeminiTemperature float64
	GeminiMaxTokens   int

	// MongoDB (query log + optional conversation store)
	MongoURI string
	MongoDB  string

	// Conversation store: "memory" or "mongo"
	ConversationStore string
	HistoryLimit      int

	// PostgreSQL reference data (optional lexicon extension)
	PostgresURI string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "2.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		FlightAPIKey:     getEnv("FLIGHT_API_KEY", ""),
		FlightAPIBaseURL: getEnv("FLIGHT_API_URL", "https://api.aviationstack.com/v1"),
		FlightAPITimeout: time.Duration(getEnvAsInt("FLIGHT_API_TIMEOUT", 10000)) * time.Millisecond,

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GeminiTemperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
		GeminiMaxTokens:   getEnvAsInt("GEMINI_MAX_TOKENS", 2000),

		MongoURI: getEnv("MONGODB_DSN", ""),
		MongoDB:  getEnv("MONGO_DB", "flightchat"),

		ConversationStore: strings.ToLower(getEnv("CONVERSATION_STORE", "memory")),
		HistoryLimit:      getEnvAsInt("HISTORY_LIMIT", 20),

		PostgresURI: getEnv("POSTGRES_DSN", ""),
	}

	return config, nil
}

// FlightAPIConfigured reports whether a usable flight API key is present.
// Placeholder values copied from sample env files do not count.
func (c *Config) FlightAPIConfigured() bool {
	return isRealKey(c.FlightAPIKey)
}

// GeminiConfigured reports whether a usable Gemini key is present
func (c *Config) GeminiConfigured() bool {
	return isRealKey(c.GeminiAPIKey)
}

func isRealKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(key), "your_")
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
