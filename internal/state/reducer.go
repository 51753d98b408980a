package state

import (
	"drsparkle/internal/config"
	"drsparkle/internal/models"
)

// Reduce applies one action to the state and returns the next state plus
// the persistence effects the transition requires. It is pure: no
// storage access, no mutation of the input, and it never fails. Guest
// sessions emit no effects at all.
func Reduce(s State, action Action) (State, []Effect) {
	switch a := action.(type) {
	case LoginStart:
		s.IsLoading = true
		return s, nil

	case LoginSuccess:
		history := a.History
		chat := a.ChatHistory
		if a.IsGuest || history == nil {
			history = []models.HistoryEntry{}
		}
		if a.IsGuest || chat == nil {
			chat = []models.Message{}
		}

		showOnboarding := a.User != nil && a.User.IsChild() && !a.IsGuest && !a.User.HasSeenTutorial
		showUpdateNotes := a.User != nil && !a.IsGuest && !showOnboarding && a.User.LastSeenVersion != config.Version

		s.User = a.User
		s.IsGuest = a.IsGuest
		s.History = history
		s.ChatHistory = chat
		s.ShowOnboarding = showOnboarding
		s.ShowUpdateNotes = showUpdateNotes
		s.IsLoading = false

		// Reset view-selection state for the new session.
		s.ChildView = ChildViewDashboard
		s.ParentView = ParentViewDashboard
		s.SelectedEntry = nil
		s.SelectedChild = nil
		return s, nil

	case Logout:
		return InitialState(), nil

	case SetChildView:
		s.ChildView = a.View
		s.SelectedEntry = nil
		return s, nil

	case SetParentView:
		s.ParentView = a.View
		return s, nil

	case SetHistory:
		s.History = a.History
		return s, nil

	case AddHistoryEntry:
		if s.User == nil {
			return s, nil
		}
		updated := make([]models.HistoryEntry, 0, len(s.History)+1)
		updated = append(updated, a.Entry)
		updated = append(updated, s.History...)
		s.History = updated
		if s.IsGuest {
			return s, nil
		}
		return s, []Effect{PersistHistory{UserID: s.User.ID, History: updated}}

	case SelectHistoryEntry:
		s.SelectedEntry = a.Entry
		s.ChildView = ChildViewHistoryDetail
		return s, nil

	case SelectChild:
		s.SelectedChild = a.Child
		s.ParentView = ParentViewChildDetail
		return s, nil

	case CompleteOnboarding:
		s.ShowOnboarding = false
		if s.User == nil || s.IsGuest {
			return s, nil
		}
		updated := *s.User
		updated.HasSeenTutorial = true
		updated.LastSeenVersion = config.Version
		s.User = &updated
		s.ShowUpdateNotes = false
		return s, []Effect{PersistUser{User: updated}}

	case CloseUpdateNotes:
		if s.User == nil {
			return s, nil
		}
		s.ShowUpdateNotes = false
		if s.IsGuest {
			return s, nil
		}
		updated := *s.User
		updated.LastSeenVersion = config.Version
		s.User = &updated
		return s, []Effect{PersistUser{User: updated}}

	case SetHasNewReport:
		s.HasNewReport = a.HasNewReport
		return s, nil

	case UpdateUserState:
		if s.User == nil {
			return s, nil
		}
		updated := *s.User
		updated.Apply(a.Patch)
		s.User = &updated
		if s.IsGuest {
			return s, nil
		}
		return s, []Effect{PersistUser{User: updated}}

	case SetChatHistory:
		s.ChatHistory = a.Messages
		if s.User == nil || s.IsGuest {
			return s, nil
		}
		return s, []Effect{PersistChat{UserID: s.User.ID, Messages: a.Messages}}

	case AddChatMessage:
		if s.User == nil {
			return s, nil
		}
		updated := make([]models.Message, 0, len(s.ChatHistory)+1)
		updated = append(updated, s.ChatHistory...)
		updated = append(updated, a.Message)
		s.ChatHistory = updated
		if s.IsGuest {
			return s, nil
		}
		return s, []Effect{PersistChat{UserID: s.User.ID, Messages: updated}}

	default:
		return s, nil
	}
}
