package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROLLFORGE_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendJSON, cfg.Backend)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROLLFORGE_DATA_DIR", dir)
	t.Setenv("ROLLFORGE_BACKEND", "sqlite")
	t.Setenv("ROLLFORGE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, dir, cfg.DataDir)
	require.Equal(t, BackendSQLite, cfg.Backend)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ROLLFORGE_DATA_DIR", t.TempDir())
	t.Setenv("ROLLFORGE_BACKEND", "postgres")

	_, err := Load()
	require.Error(t, err)
}

func TestDerivedPaths(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/rf"}
	require.Equal(t, filepath.Join("/tmp/rf", "characters.json"), cfg.CharactersPath())
	require.Equal(t, filepath.Join("/tmp/rf", "characters.db"), cfg.DatabasePath())
	require.Equal(t, filepath.Join("/tmp/rf", "character_images"), cfg.PortraitsDir())
}
