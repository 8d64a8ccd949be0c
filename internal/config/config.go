// ABOUTME: Centralized configuration for the stylist recommendation core
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the stylist system
type Config struct {
	// Data paths
	CatalogPath string
	IndexDir    string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	ResultCount       int
	MaxImagesPerRow   int
	ImageFetchTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CatalogPath:       getEnv("STYLIST_CATALOG_PATH", "data/catalog.csv"),
		IndexDir:          getEnv("STYLIST_INDEX_DIR", "data/index"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		ChatModel:         getEnv("STYLIST_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:    getEnv("STYLIST_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:           getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ResultCount:       getEnvInt("STYLIST_RESULT_COUNT", 3),
		MaxImagesPerRow:   getEnvInt("STYLIST_MAX_IMAGES_PER_ROW", 3),
		ImageFetchTimeout: getEnvDuration("STYLIST_IMAGE_FETCH_TIMEOUT", 8*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ResultCount <= 0 {
		return fmt.Errorf("STYLIST_RESULT_COUNT must be positive, got %d", c.ResultCount)
	}
	if c.MaxImagesPerRow <= 0 {
		return fmt.Errorf("STYLIST_MAX_IMAGES_PER_ROW must be positive, got %d", c.MaxImagesPerRow)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ImageFetchTimeout <= 0 {
		return fmt.Errorf("STYLIST_IMAGE_FETCH_TIMEOUT must be positive, got %v", c.ImageFetchTimeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
