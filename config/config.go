// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	API         APIConfig
	Media       MediaConfig
	Cache       CacheConfig
	Log         LogConfig
}

type APIConfig struct {
	BaseURL        string
	Token          string
	RequestTimeout int     // in seconds
	RateLimit      float64 // requests per second
	RateBurst      int
}

type MediaConfig struct {
	MinCount     int
	MaxCount     int
	MaxFileSize  int64 // in bytes
	AllowedTypes []string
}

type CacheConfig struct {
	CategoryTTL int // in seconds
	MaxEntries  int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
			Token:          getEnv("API_TOKEN", ""),
			RequestTimeout: getEnvAsInt("API_REQUEST_TIMEOUT", 30),
			RateLimit:      getEnvAsFloat("API_RATE_LIMIT", 5),
			RateBurst:      getEnvAsInt("API_RATE_BURST", 10),
		},
		Media: MediaConfig{
			MinCount:    getEnvAsInt("MEDIA_MIN_COUNT", 2),
			MaxCount:    getEnvAsInt("MEDIA_MAX_COUNT", 4),
			MaxFileSize: getEnvAsInt64("MEDIA_MAX_FILE_SIZE", 2*1024*1024), // 2MB
			AllowedTypes: strings.Split(
				getEnv("MEDIA_ALLOWED_TYPES", "image/jpeg,image/png,image/webp"), ","),
		},
		Cache: CacheConfig{
			CategoryTTL: getEnvAsInt("CACHE_CATEGORY_TTL", 300), // 5 minutes
			MaxEntries:  getEnvAsInt("CACHE_MAX_ENTRIES", 64),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.API.Token == "" && c.Environment == "production" {
		return fmt.Errorf("API token is required in production")
	}

	if c.Media.MinCount < 1 || c.Media.MaxCount < c.Media.MinCount {
		return fmt.Errorf("media count bounds are invalid: min=%d max=%d",
			c.Media.MinCount, c.Media.MaxCount)
	}

	if c.Media.MaxFileSize <= 0 {
		return fmt.Errorf("media max file size must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
