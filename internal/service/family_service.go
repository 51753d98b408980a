package service

import (
	"errors"
	"fmt"

	"drsparkle/internal/models"
	"drsparkle/internal/repository"
	"drsparkle/internal/validation"
)

// FamilyService owns the account graph: the parent/child ownership link
// and the only cascading-delete path in the system.
type FamilyService struct {
	users    *repository.UserRepository
	history  *repository.HistoryRepository
	settings *repository.SettingsRepository
	plans    *repository.PlanRepository
	chats    *repository.ChatRepository
}

// NewFamilyService creates a new family service
func NewFamilyService(
	users *repository.UserRepository,
	history *repository.HistoryRepository,
	settings *repository.SettingsRepository,
	plans *repository.PlanRepository,
	chats *repository.ChatRepository,
) *FamilyService {
	return &FamilyService{
		users:    users,
		history:  history,
		settings: settings,
		plans:    plans,
		chats:    chats,
	}
}

// ChildrenForParent returns the parent's children in childIds order.
// Ids that no longer resolve are silently dropped, tolerating a partially
// completed deletion.
func (s *FamilyService) ChildrenForParent(parentID string) ([]models.User, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	parent, ok := users[parentID]
	if !ok || !parent.IsParent() {
		return []models.User{}, nil
	}

	children := make([]models.User, 0, len(parent.ChildIDs))
	for _, childID := range parent.ChildIDs {
		if child, ok := users[childID]; ok {
			children = append(children, child)
		}
	}
	return children, nil
}

// RemoveChild deletes a child account and all of its per-user data, then
// unlinks the id from the parent. Deletions are best-effort: every store
// is attempted and failures are aggregated, but the parent's childIds
// pointer is always updated last so the graph never references a child
// whose deletion has begun. Repeat calls are no-ops.
func (s *FamilyService) RemoveChild(parent *models.User, childID string) (*models.User, error) {
	if childID == "" {
		return nil, validation.Error{Field: "childId", Message: "child id is required for deletion"}
	}
	if parent == nil {
		return nil, validation.Error{Field: "parent", Message: "parent is required"}
	}

	var errs []error
	if err := s.users.Delete(childID); err != nil {
		errs = append(errs, fmt.Errorf("credential record: %w", err))
	}
	if err := s.history.Delete(childID); err != nil {
		errs = append(errs, fmt.Errorf("history: %w", err))
	}
	if err := s.settings.Delete(childID); err != nil {
		errs = append(errs, fmt.Errorf("settings: %w", err))
	}
	if err := s.plans.Delete(childID); err != nil {
		errs = append(errs, fmt.Errorf("plan: %w", err))
	}
	if err := s.chats.Delete(childID); err != nil {
		errs = append(errs, fmt.Errorf("chat: %w", err))
	}

	// Update the ownership pointer last.
	updatedParent := *parent
	updatedParent.ChildIDs = removeID(parent.ChildIDs, childID)
	if err := s.users.Save(&updatedParent); err != nil {
		errs = append(errs, fmt.Errorf("parent record: %w", err))
	}

	if len(errs) > 0 {
		return &updatedParent, fmt.Errorf("failed to remove child %s: %w", childID, errors.Join(errs...))
	}
	return &updatedParent, nil
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
