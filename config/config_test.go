package config_test

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phantomding/starrail-simulator/config"
)

func TestDefault_HasSaneBaseline(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 50, cfg.MaxRounds)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("SIMULATE_MAX_ROUNDS", "12")
	t.Setenv("SIMULATE_LOG_LEVEL", "debug")
	t.Setenv("SIMULATE_SEED", "7")
	t.Setenv("SIMULATE_CATALOG_DIR", "/tmp/cats")

	cfg := config.Load()
	require.Equal(t, 12, cfg.MaxRounds)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "/tmp/cats", cfg.CatalogDir)
}

func TestLoad_IgnoresUnparsableOverrides(t *testing.T) {
	t.Setenv("SIMULATE_MAX_ROUNDS", "not-a-number")
	defer os.Unsetenv("SIMULATE_MAX_ROUNDS")

	cfg := config.Load()
	assert.Equal(t, config.Default().MaxRounds, cfg.MaxRounds)
}
