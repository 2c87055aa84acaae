package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MERGE_BROADCAST_DIR",
		"MERGE_DEPLOYMENT_FILE",
		"MERGE_OUTPUT",
		"MERGE_SKIP_CHAINS",
		"MERGE_SORT_CHAINS",
		"MERGE_LOG_LEVEL",
		"MERGE_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()
		assert.Equal(t, DefaultBroadcastDir, cfg.BroadcastDir)
		assert.Equal(t, DefaultDeploymentFile, cfg.DeploymentFile)
		assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
		assert.Equal(t, []string{DefaultSkipChain}, cfg.SkipChains)
		assert.Equal(t, SortLexical, cfg.SortChains)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MERGE_BROADCAST_DIR", "broadcast/other")
		t.Setenv("MERGE_OUTPUT", "out/deployed.ts")
		t.Setenv("MERGE_SKIP_CHAINS", "31337, 1337")
		t.Setenv("MERGE_SORT_CHAINS", SortNumeric)
		t.Setenv("MERGE_LOG_LEVEL", "debug")

		cfg := Load()
		assert.Equal(t, "broadcast/other", cfg.BroadcastDir)
		assert.Equal(t, "out/deployed.ts", cfg.OutputPath)
		assert.Equal(t, []string{"31337", "1337"}, cfg.SkipChains)
		assert.Equal(t, SortNumeric, cfg.SortChains)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("config file overrides listed keys only", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "merge.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"broadcast_dir: broadcast/fromfile\nskip_chains:\n  - \"31337\"\n  - \"5\"\n"), 0644))
		t.Setenv("MERGE_CONFIG_FILE", path)
		t.Setenv("MERGE_LOG_LEVEL", "warn")

		cfg := Load()
		assert.Equal(t, "broadcast/fromfile", cfg.BroadcastDir)
		assert.Equal(t, []string{"31337", "5"}, cfg.SkipChains)
		// Keys absent from the file keep their env/default values.
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	})

	t.Run("unreadable config file falls back to env and defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MERGE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

		cfg := Load()
		assert.Equal(t, DefaultBroadcastDir, cfg.BroadcastDir)
	})

	t.Run("invalid yaml falls back to env and defaults", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "merge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("broadcast_dir: [unclosed"), 0644))
		t.Setenv("MERGE_CONFIG_FILE", path)

		cfg := Load()
		assert.Equal(t, DefaultBroadcastDir, cfg.BroadcastDir)
	})
}
