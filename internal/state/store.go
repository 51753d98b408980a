package state

import (
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/repository"
)

// Store drives the reducer: it owns the current state, pre-loads stored
// collections for logins, and executes the effects each transition emits.
// It is single-writer: all dispatching happens from one goroutine, which
// is why there is no lock.
type Store struct {
	state   State
	users   *repository.UserRepository
	history *repository.HistoryRepository
	chats   *repository.ChatRepository

	// session increments on every login attempt and logout so that a
	// slow login resolving after the session changed can be discarded.
	session uint64
}

// NewStore creates a driver starting from the logged-out state.
func NewStore(users *repository.UserRepository, history *repository.HistoryRepository, chats *repository.ChatRepository) *Store {
	return &Store{
		state:   InitialState(),
		users:   users,
		history: history,
		chats:   chats,
	}
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Dispatch reduces one action and executes the resulting effects. The
// state update always applies; a failed effect is reported but does not
// roll the transition back.
func (s *Store) Dispatch(action Action) error {
	next, effects := Reduce(s.state, action)
	s.state = next

	for _, effect := range effects {
		if err := s.run(effect); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) run(effect Effect) error {
	switch e := effect.(type) {
	case PersistHistory:
		if err := s.history.Save(e.UserID, e.History); err != nil {
			return fmt.Errorf("failed to persist history: %w", err)
		}
	case PersistUser:
		user := e.User
		if err := s.users.Save(&user); err != nil {
			return fmt.Errorf("failed to persist user: %w", err)
		}
	case PersistChat:
		if err := s.chats.Save(e.UserID, e.Messages); err != nil {
			return fmt.Errorf("failed to persist chat: %w", err)
		}
	}
	return nil
}

// BeginLogin enters the loading state and returns a session token. The
// caller passes the token back to CompleteLogin so a result that resolves
// after another login attempt (or a logout) is discarded.
func (s *Store) BeginLogin() uint64 {
	s.session++
	_ = s.Dispatch(LoginStart{})
	return s.session
}

// CompleteLogin installs the signed-in user, pre-loading the stored
// history and chat transcript (guests get empty collections). Stale
// completions are ignored.
func (s *Store) CompleteLogin(session uint64, user *models.User, isGuest bool) error {
	if session != s.session {
		return nil
	}

	history := []models.HistoryEntry{}
	chat := []models.Message{}
	if !isGuest && user != nil {
		var err error
		history, err = s.history.Get(user.ID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		chat, err = s.chats.Get(user.ID)
		if err != nil {
			return fmt.Errorf("failed to load chat: %w", err)
		}
	}

	return s.Dispatch(LoginSuccess{
		User:        user,
		IsGuest:     isGuest,
		History:     history,
		ChatHistory: chat,
	})
}

// Logout invalidates any in-flight login and resets to the initial state.
func (s *Store) Logout() {
	s.session++
	_ = s.Dispatch(Logout{})
}
