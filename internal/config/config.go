package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds service configuration, parsed from the environment.
// LOG_LEVEL accepts the slog level names (debug, info, warn, error).
type Config struct {
	Port        string     `env:"PORT" envDefault:"8080"`
	Environment string     `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// RedisURL points at the session store and generation queue.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// ArchivePath is the SQLite database that keeps generated worlds
	// after their session entry expires. Empty disables archiving.
	ArchivePath string `env:"ARCHIVE_PATH" envDefault:"./data/worlds.db"`

	// PresetDir holds the option preset files served by the API.
	PresetDir string `env:"PRESET_DIR" envDefault:"./data/presets"`

	// WorkerID names a worker instance in logs and locks. Empty means
	// the worker derives one at startup.
	WorkerID string `env:"WORKER_ID"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
