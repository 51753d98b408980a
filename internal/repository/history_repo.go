package repository

import (
	"encoding/json"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/storage"
)

// HistoryRepository persists one check-in history per user, maintained
// newest-first.
type HistoryRepository struct {
	store storage.Store
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(store storage.Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

// Get returns a user's history, newest-first. Missing histories are empty.
func (r *HistoryRepository) Get(userID string) ([]models.HistoryEntry, error) {
	if userID == "" {
		return []models.HistoryEntry{}, nil
	}
	raw, ok, err := r.store.Get(HistoryKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read history for %s: %w", userID, err)
	}
	if !ok {
		return []models.HistoryEntry{}, nil
	}

	var history []models.HistoryEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("failed to decode history for %s: %w", userID, err)
	}
	return history, nil
}

// Save replaces a user's full history list.
func (r *HistoryRepository) Save(userID string, history []models.HistoryEntry) error {
	if userID == "" {
		return nil
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history for %s: %w", userID, err)
	}
	if err := r.store.Set(HistoryKey(userID), raw); err != nil {
		return fmt.Errorf("failed to write history for %s: %w", userID, err)
	}
	return nil
}

// Delete removes a user's history.
func (r *HistoryRepository) Delete(userID string) error {
	if userID == "" {
		return nil
	}
	return r.store.Delete(HistoryKey(userID))
}
