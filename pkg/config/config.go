package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv       string
	LogLevel     string
	LogResponses bool

	// Locale used when a turn does not carry one.
	DefaultLocale string

	// Monetization
	MonetizationURL     string
	MonetizationTimeout time.Duration

	// Session attribute store
	SessionBackend string
	SessionTTL     time.Duration

	// Database
	DatabaseURL string
	SQLitePath  string

	// Redis
	RedisURL string

	// RabbitMQ
	RabbitMQURL string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogResponses: getBoolEnv("LOG_RESPONSES", false),

		DefaultLocale: getEnv("VOCALIS_LOCALE", "en-US"),

		MonetizationURL:     getEnv("MONETIZATION_URL", ""),
		MonetizationTimeout: getDurationEnv("MONETIZATION_TIMEOUT", 5*time.Second),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     getDurationEnv("SESSION_TTL", 30*time.Minute),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("VOCALIS_SQLITE_PATH", getDefaultSQLitePath()),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vocalis/sessions.db"
	}
	return home + "/.vocalis/sessions.db"
}
