package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"praise-board/internal/logger"
	"praise-board/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesStore_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store := NewPreferencesStore(path, logger.NoOpLogger{})

	prefs, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, map[string]string{
		"language":    "zh_CN",
		"date_format": "年月日",
		"time_format": "时分秒",
	}, onDisk)
}

func TestPreferencesStore_LoadFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language": "en_UK"}`), 0o644))

	prefs, err := NewPreferencesStore(path, logger.NoOpLogger{}).Load()
	require.NoError(t, err)
	assert.Equal(t, models.LangBritishEnglish, prefs.Language)
	assert.Equal(t, models.DateYMD, prefs.DateFormat)
	assert.Equal(t, models.TimeHMS, prefs.TimeFormat)
}

func TestPreferencesStore_MalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language": `), 0o644))

	store := NewPreferencesStore(path, logger.NoOpLogger{})
	prefs, err := store.Load()
	assert.Error(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
	assert.Equal(t, models.DefaultPreferences(), store.Current())
}

func TestPreferencesStore_InvalidValueFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language": "fr_FR"}`), 0o644))

	prefs, err := NewPreferencesStore(path, logger.NoOpLogger{}).Load()
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestPreferencesStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store := NewPreferencesStore(path, logger.NoOpLogger{})

	want := models.Preferences{
		Language:   models.LangTraditionalChinese,
		DateFormat: models.DateDMY,
		TimeFormat: models.TimeHM,
	}
	require.NoError(t, store.Save(want))
	assert.Equal(t, want, store.Current())

	got, err := NewPreferencesStore(path, logger.NoOpLogger{}).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreferencesStore_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store := NewPreferencesStore(path, logger.NoOpLogger{})

	bad := models.DefaultPreferences()
	bad.DateFormat = "yyyy-mm-dd"
	assert.Error(t, store.Save(bad))
	assert.NoFileExists(t, path)
	assert.Equal(t, models.DefaultPreferences(), store.Current())
}
