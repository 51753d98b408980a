package repository

import (
	"encoding/json"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/storage"
)

// UserRepository owns the users table: a single storage key holding every
// User record keyed by normalized id.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// All returns the full users table. A missing table is an empty map.
func (r *UserRepository) All() (map[string]models.User, error) {
	raw, ok, err := r.store.Get(UsersKey())
	if err != nil {
		return nil, fmt.Errorf("failed to read users table: %w", err)
	}
	if !ok {
		return map[string]models.User{}, nil
	}

	var users map[string]models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users table: %w", err)
	}
	if users == nil {
		users = map[string]models.User{}
	}
	return users, nil
}

// Get retrieves a user by id, or nil if absent.
func (r *UserRepository) Get(id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Save writes one user record into the table.
func (r *UserRepository) Save(user *models.User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("cannot save user without an id")
	}
	users, err := r.All()
	if err != nil {
		return err
	}
	users[user.ID] = *user
	return r.SaveAll(users)
}

// SaveAll replaces the whole users table.
func (r *UserRepository) SaveAll(users map[string]models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users table: %w", err)
	}
	if err := r.store.Set(UsersKey(), raw); err != nil {
		return fmt.Errorf("failed to write users table: %w", err)
	}
	return nil
}

// Delete removes a user record. Deleting a missing or empty id is a no-op.
func (r *UserRepository) Delete(id string) error {
	if id == "" {
		return nil
	}
	users, err := r.All()
	if err != nil {
		return err
	}
	if _, ok := users[id]; !ok {
		return nil
	}
	delete(users, id)
	return r.SaveAll(users)
}
