package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"praise-board/internal/logger"
	"praise-board/internal/models"
)

// PreferencesStore persists models.Preferences as JSON at a fixed path
type PreferencesStore struct {
	path   string
	logger logger.Logger

	mu      sync.RWMutex
	current models.Preferences
}

func NewPreferencesStore(path string, log logger.Logger) *PreferencesStore {
	return &PreferencesStore{
		path:    path,
		logger:  log,
		current: models.DefaultPreferences(),
	}
}

// Load reads the preferences file. A missing file is created with defaults.
// An unreadable, malformed or invalid file yields defaults together with the
// error so the caller can report it; the store always holds usable values.
func (ps *PreferencesStore) Load() (models.Preferences, error) {
	data, err := os.ReadFile(ps.path)
	if errors.Is(err, os.ErrNotExist) {
		ps.logger.Info("PreferencesStore", "preferences file missing, writing defaults", map[string]interface{}{"path": ps.path})
		defaults := models.DefaultPreferences()
		ps.set(defaults)
		return defaults, ps.write(defaults)
	}
	if err != nil {
		return ps.fallback(fmt.Errorf("failed to read preferences: %w", err))
	}

	var prefs models.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return ps.fallback(fmt.Errorf("failed to parse preferences: %w", err))
	}

	prefs = prefs.WithDefaults()
	if err := prefs.Validate(); err != nil {
		return ps.fallback(fmt.Errorf("invalid preferences: %w", err))
	}

	ps.set(prefs)
	ps.logger.Debug("PreferencesStore", "preferences loaded", map[string]interface{}{
		"language":    string(prefs.Language),
		"date_format": string(prefs.DateFormat),
		"time_format": string(prefs.TimeFormat),
	})
	return prefs, nil
}

// Save validates and writes prefs, then makes them current
func (ps *PreferencesStore) Save(prefs models.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	if err := ps.write(prefs); err != nil {
		return err
	}
	ps.set(prefs)
	return nil
}

func (ps *PreferencesStore) Current() models.Preferences {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.current
}

func (ps *PreferencesStore) set(prefs models.Preferences) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.current = prefs
}

func (ps *PreferencesStore) fallback(err error) (models.Preferences, error) {
	ps.logger.Error("PreferencesStore", err, map[string]interface{}{"path": ps.path})
	defaults := models.DefaultPreferences()
	ps.set(defaults)
	return defaults, err
}

func (ps *PreferencesStore) write(prefs models.Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(ps.path, append(data, '\n'), 0o644); err != nil {
		ps.logger.Error("PreferencesStore", err, map[string]interface{}{"path": ps.path})
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
