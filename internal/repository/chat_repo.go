package repository

import (
	"encoding/json"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/storage"
)

// ChatRepository persists one chat transcript per user.
type ChatRepository struct {
	store storage.Store
}

// NewChatRepository creates a new chat repository
func NewChatRepository(store storage.Store) *ChatRepository {
	return &ChatRepository{store: store}
}

// Get returns a user's transcript. Missing transcripts are empty.
func (r *ChatRepository) Get(userID string) ([]models.Message, error) {
	if userID == "" {
		return []models.Message{}, nil
	}
	raw, ok, err := r.store.Get(ChatKey(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to read chat for %s: %w", userID, err)
	}
	if !ok {
		return []models.Message{}, nil
	}

	var messages []models.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat for %s: %w", userID, err)
	}
	return messages, nil
}

// Save replaces a user's full transcript.
func (r *ChatRepository) Save(userID string, messages []models.Message) error {
	if userID == "" {
		return nil
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to encode chat for %s: %w", userID, err)
	}
	if err := r.store.Set(ChatKey(userID), raw); err != nil {
		return fmt.Errorf("failed to write chat for %s: %w", userID, err)
	}
	return nil
}

// Delete removes a user's transcript.
func (r *ChatRepository) Delete(userID string) error {
	if userID == "" {
		return nil
	}
	return r.store.Delete(ChatKey(userID))
}
