package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFunc(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(envFunc(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 50, cfg.Size)
	assert.False(t, cfg.TelemetryEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(envFunc(map[string]string{
		EnvSize:          "12",
		EnvMode:          "view",
		EnvTilesFile:     "/tmp/tiles.json",
		EnvHoneycombKey:  "secret",
		EnvHoneycombData: "grids",
	}))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, ModeView, cfg.Mode)
	assert.Equal(t, "/tmp/tiles.json", cfg.TilesFile)
	assert.True(t, cfg.TelemetryEnabled())

	endpoint, headers := cfg.TelemetryEndpoint()
	assert.Equal(t, "https://api.honeycomb.io", endpoint)
	assert.Equal(t, "secret", headers["x-honeycomb-team"])
	assert.Equal(t, "grids", headers["x-honeycomb-dataset"])
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []map[string]string{
		{EnvSize: "abc"},
		{EnvSize: "0"},
		{EnvSize: "-4"},
		{EnvMode: "fullscreen"},
	}

	for _, vars := range tests {
		_, err := LoadConfig(envFunc(vars))
		assert.Error(t, err, "vars %v", vars)
	}
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{"": ModePrint, "print": ModePrint, "view": ModeView} {
		got, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "unknown", Mode(7).String())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TILEGRID_TEST_SIZE=9\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TILEGRID_TEST_SIZE") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "absent.env")))
	assert.Equal(t, "9", os.Getenv("TILEGRID_TEST_SIZE"))
}
