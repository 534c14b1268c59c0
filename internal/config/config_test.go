package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongvang00/HealthManagementSystem/internal/config"
	"github.com/ongvang00/HealthManagementSystem/internal/logger"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Equal(t, config.SleepPolicyLegacy, cfg.SleepPolicy)
}

func TestLoadMergesFileValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/health\nsleep_policy: Elapsed\ncolor: never\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/health", cfg.DataDir)
	assert.Equal(t, config.SleepPolicyElapsed, cfg.SleepPolicy)
	assert.Equal(t, logger.ColorNever, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep their default")
}

func TestLoadRejectsUnknownSleepPolicy(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleep_policy: fuzzy\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sleep_policy")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.DefaultConfig()
	cfg.SleepPolicy = config.SleepPolicyElapsed
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMergeWithFlags(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	dir := "/tmp/override"
	level := "ERROR"
	noColor := true
	cfg.MergeWithFlags(&dir, &level, &noColor)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, logger.ColorNever, cfg.Color)

	empty := ""
	cfg.MergeWithFlags(&empty, nil, nil)
	assert.Equal(t, dir, cfg.DataDir)
}
