package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port           string
	Environment    string
	MongoURI       string
	JWTSecret      string
	AllowedOrigins string

	// Global API rate limit (requests per minute per IP)
	RateLimitMax int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017/trineo-tasks"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		RateLimitMax:   getIntEnv("RATE_LIMIT_MAX", 200),
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
