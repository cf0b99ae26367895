package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "students_name.txt", cfg.NamesFile)
	assert.Equal(t, "preferences.json", cfg.PreferencesFile)
	assert.Equal(t, "locales", cfg.LocalesDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.True(t, cfg.WatchLocales)
	assert.Equal(t, float32(1280), cfg.WindowWidth)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PRAISEBOARD_NAMES_FILE", "class3.xlsx")
	t.Setenv("PRAISEBOARD_LOG_LEVEL", "debug")
	t.Setenv("PRAISEBOARD_LOG_JSON", "true")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "class3.xlsx", cfg.NamesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `{"locales_dir": "i18n", "window_width": 1920}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "praise-board.json"), []byte(body), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "i18n", cfg.LocalesDir)
	assert.Equal(t, float32(1920), cfg.WindowWidth)
}

func TestLoad_RejectsInvalidLevel(t *testing.T) {
	t.Setenv("PRAISEBOARD_LOG_LEVEL", "chatty")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
