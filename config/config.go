// Package config is the CLI-facing configuration layer for
// cmd/simulate. The core engine (battle, catalog, actor, ...) never
// takes a Config value — only assembled Go values — so this package has
// no importers outside cmd/simulate and its own tests.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the fully resolved set of values a simulate run needs.
type Config struct {
	CatalogDir string
	RosterPath string
	MaxRounds  int
	LogLevel   logrus.Level
	Seed       int64
}

// Default returns the zero-config baseline cmd/simulate falls back to
// when neither a flag nor an environment variable sets a value.
func Default() Config {
	return Config{
		CatalogDir: "./catalog-data",
		RosterPath: "./roster.yaml",
		MaxRounds:  50,
		LogLevel:   logrus.InfoLevel,
		Seed:       0,
	}
}

// Load starts from Default, applies a best-effort .env file (missing is
// not an error — godotenv.Load's own error is intentionally discarded,
// matching a local-dev convenience rather than a deployment requirement),
// then layers environment-variable overrides on top. cmd/simulate layers
// explicit CLI flags on top of whatever this returns.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("SIMULATE_CATALOG_DIR"); v != "" {
		cfg.CatalogDir = v
	}
	if v := os.Getenv("SIMULATE_ROSTER_PATH"); v != "" {
		cfg.RosterPath = v
	}
	if v := os.Getenv("SIMULATE_MAX_ROUNDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRounds = n
		}
	}
	if v := os.Getenv("SIMULATE_LOG_LEVEL"); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("SIMULATE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	return cfg
}
