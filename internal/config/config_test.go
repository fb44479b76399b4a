package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.True(t, cfg.WrapAround)
	require.Equal(t, "vertical", cfg.Axis)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := &Config{
		Version:    1,
		WrapAround: false,
		Axis:       "horizontal",
		Logging:    LoggingConfig{Level: "debug", File: "out.log"},
	}
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadFromPathInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("wrap_around = ["), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}

func TestLoadFromPathDefaultsAxis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\nwrap_around = true\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "vertical", cfg.Axis)
}

func TestSaveToPathCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	svc := NewConfigService()
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
