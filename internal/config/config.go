package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

type Config struct {
	Port string

	// Auth for the HTTP API; empty disables auth.
	APIKey string

	// Note store connection; empty disables pushing.
	NotestoreURL    string
	NotestoreAPIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Outline defaults
	DefaultMaxLevel  int
	DefaultRootLevel int

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("PDFOUTLINE_API_KEY"),

		NotestoreURL:    os.Getenv("NOTESTORE_URL"),
		NotestoreAPIKey: os.Getenv("NOTESTORE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultMaxLevel:  envInt("DEFAULT_MAX_LEVEL", outline.DefaultMaxLevel),
		DefaultRootLevel: envInt("DEFAULT_ROOT_LEVEL", outline.DefaultRootLevel),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DefaultMaxLevel < 1 {
		return fmt.Errorf("DEFAULT_MAX_LEVEL must be positive, got %d", c.DefaultMaxLevel)
	}
	if c.DefaultRootLevel < 1 {
		return fmt.Errorf("DEFAULT_ROOT_LEVEL must be positive, got %d", c.DefaultRootLevel)
	}
	if c.DefaultRootLevel > c.DefaultMaxLevel {
		return fmt.Errorf("DEFAULT_ROOT_LEVEL %d exceeds DEFAULT_MAX_LEVEL %d",
			c.DefaultRootLevel, c.DefaultMaxLevel)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
