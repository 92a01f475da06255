package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DOCSTORE_SEED_FILE", "")
	t.Setenv("METRICS_NAMESPACE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Empty(t, cfg.Store.SeedFile)
	require.Equal(t, "docstore", cfg.Metrics.Namespace)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("DOCSTORE_SEED_FILE", "/tmp/seed.json")
	t.Setenv("METRICS_NAMESPACE", "docs_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "/tmp/seed.json", cfg.Store.SeedFile)
	require.Equal(t, "docs_test", cfg.Metrics.Namespace)
}

func TestLoadConfigRejectsUnknownFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadConfig()
	require.Error(t, err)
}
