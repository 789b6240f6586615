package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, "savedRoutines", cfg.Storage.Key)
	require.Equal(t, "skincare.db", filepath.Base(cfg.Storage.Path))
	require.Equal(t, "routines.json", filepath.Base(cfg.Storage.FilePath))
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.UI.AltScreen)
	require.True(t, cfg.UI.Markdown)
	require.Equal(t, "auto", cfg.UI.GlamourStyle)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
backend = "File"
file_path = "/tmp/r.json"

[ui]
markdown = false
`), 0o600))
	t.Setenv("SKINCARE_LOG_LEVEL", "debug")
	t.Setenv("SKINCARE_STORAGE_KEY", "routines-v2")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.Storage.Backend)
	require.Equal(t, "/tmp/r.json", cfg.Storage.FilePath)
	require.Equal(t, "routines-v2", cfg.Storage.Key)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.UI.Markdown)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\nbackend ="), 0o600))
	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	cfg.Storage.Backend = BackendMemory
	cfg.UI.GlamourStyle = "dark"
	cfg.UI.AltScreen = false

	require.NoError(t, Save(cfg, path))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv("SKINCARE_CONFIG", "/etc/skincare.toml")
	require.Equal(t, "/etc/skincare.toml", Path())
}
