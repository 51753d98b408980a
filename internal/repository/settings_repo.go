package repository

import (
	"encoding/json"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/storage"
)

// SettingsRepository persists per-user settings. Stored records may be
// partial; Get merges them over the central defaults so schema growth is
// forward compatible.
type SettingsRepository struct {
	store storage.Store
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(store storage.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns a user's settings merged over the defaults.
func (r *SettingsRepository) Get(userID string) (models.Settings, error) {
	settings := models.DefaultSettings()
	if userID == "" {
		return settings, nil
	}

	raw, ok, err := r.store.Get(SettingsKey(userID))
	if err != nil {
		return settings, fmt.Errorf("failed to read settings for %s: %w", userID, err)
	}
	if !ok {
		return settings, nil
	}

	// Unmarshal into the defaults-populated struct: fields absent from the
	// stored record keep their default values.
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to decode settings for %s: %w", userID, err)
	}
	return settings, nil
}

// Save writes a user's settings record.
func (r *SettingsRepository) Save(userID string, settings models.Settings) error {
	if userID == "" {
		return nil
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings for %s: %w", userID, err)
	}
	if err := r.store.Set(SettingsKey(userID), raw); err != nil {
		return fmt.Errorf("failed to write settings for %s: %w", userID, err)
	}
	return nil
}

// Delete removes a user's settings.
func (r *SettingsRepository) Delete(userID string) error {
	if userID == "" {
		return nil
	}
	return r.store.Delete(SettingsKey(userID))
}
