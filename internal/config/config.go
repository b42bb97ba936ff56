// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings sourced from BOARDNIGHT_* variables
type Config struct {
	// ListenAddr is the address the HTTP server binds to
	ListenAddr string `env:"BOARDNIGHT_ADDR" envDefault:":8080"`
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"BOARDNIGHT_STORAGE" envDefault:"memory"`
	// RedisURL is the Redis connection URL, used when StorageType is "redis"
	RedisURL string `env:"BOARDNIGHT_REDIS_URL" envDefault:"redis://localhost:6379"`
	// LogLevel is the minimum slog level (debug, info, warn, error)
	LogLevel string `env:"BOARDNIGHT_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
