// Package state holds the application state machine: a pure reducer over
// actions, with persistence expressed as effects executed by a driver.
package state

import (
	"drsparkle/internal/models"
)

// ChildView names the screen a signed-in child is looking at.
type ChildView string

const (
	ChildViewDashboard     ChildView = "dashboard"
	ChildViewChat          ChildView = "chat"
	ChildViewHistory       ChildView = "history"
	ChildViewHistoryDetail ChildView = "historyDetail"
	ChildViewSettings      ChildView = "settings"
	ChildViewSmilePlan     ChildView = "smilePlan"
	ChildViewPlay          ChildView = "play"
)

// ParentView names the screen a signed-in parent is looking at.
type ParentView string

const (
	ParentViewDashboard   ParentView = "parentDashboard"
	ParentViewChildDetail ParentView = "childDetailView"
)

// State is the full application state. It is treated as a value: the
// reducer returns a new State and never mutates its input.
type State struct {
	User            *models.User
	IsGuest         bool
	ChildView       ChildView
	ParentView      ParentView
	History         []models.HistoryEntry
	ChatHistory     []models.Message
	SelectedEntry   *models.HistoryEntry
	SelectedChild   *models.User
	ShowOnboarding  bool
	ShowUpdateNotes bool
	HasNewReport    bool
	IsLoading       bool
}

// InitialState is the logged-out starting point.
func InitialState() State {
	return State{
		ChildView:   ChildViewDashboard,
		ParentView:  ParentViewDashboard,
		History:     []models.HistoryEntry{},
		ChatHistory: []models.Message{},
	}
}
