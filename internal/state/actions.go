package state

import (
	"drsparkle/internal/models"
)

// Action is a state-transition request. Exactly one action is reduced at
// a time; asynchronous work resolves outside the reducer and dispatches a
// follow-up action carrying the result.
type Action interface {
	isAction()
}

// LoginStart marks the transient loading state while credentials are
// being verified.
type LoginStart struct{}

// LoginSuccess installs a signed-in user. History and ChatHistory carry
// the user's stored collections, pre-loaded by the dispatching driver
// (always empty for guests).
type LoginSuccess struct {
	User        *models.User
	IsGuest     bool
	History     []models.HistoryEntry
	ChatHistory []models.Message
}

// Logout returns to the pristine initial state.
type Logout struct{}

// SetChildView navigates the child UI and clears any open history entry.
type SetChildView struct {
	View ChildView
}

// SetParentView navigates the parent UI.
type SetParentView struct {
	View ParentView
}

// SetHistory replaces the in-memory history without persisting.
type SetHistory struct {
	History []models.HistoryEntry
}

// AddHistoryEntry prepends a completed check-in and persists the full
// updated list, unless the session is a guest one.
type AddHistoryEntry struct {
	Entry models.HistoryEntry
}

// SelectHistoryEntry opens one entry in the detail view.
type SelectHistoryEntry struct {
	Entry *models.HistoryEntry
}

// SelectChild opens one child in the parent detail view.
type SelectChild struct {
	Child *models.User
}

// CompleteOnboarding stamps the tutorial as seen and persists the user
// record, unless the session is a guest one.
type CompleteOnboarding struct{}

// CloseUpdateNotes stamps the current version as seen and persists the
// user record, unless the session is a guest one.
type CloseUpdateNotes struct{}

// SetHasNewReport toggles the new-report badge.
type SetHasNewReport struct {
	HasNewReport bool
}

// UpdateUserState merge-patches the signed-in user and persists the
// result, unless the session is a guest one.
type UpdateUserState struct {
	Patch models.UserPatch
}

// SetChatHistory replaces the transcript and persists it, unless the
// session is a guest one.
type SetChatHistory struct {
	Messages []models.Message
}

// AddChatMessage appends one message and persists the transcript, unless
// the session is a guest one.
type AddChatMessage struct {
	Message models.Message
}

func (LoginStart) isAction()         {}
func (LoginSuccess) isAction()       {}
func (Logout) isAction()             {}
func (SetChildView) isAction()       {}
func (SetParentView) isAction()      {}
func (SetHistory) isAction()         {}
func (AddHistoryEntry) isAction()    {}
func (SelectHistoryEntry) isAction() {}
func (SelectChild) isAction()        {}
func (CompleteOnboarding) isAction() {}
func (CloseUpdateNotes) isAction()   {}
func (SetHasNewReport) isAction()    {}
func (UpdateUserState) isAction()    {}
func (SetChatHistory) isAction()     {}
func (AddChatMessage) isAction()     {}

// Effect is a persistence request emitted by the reducer and executed by
// the driver after the transition completes.
type Effect interface {
	isEffect()
}

// PersistHistory writes the user's full history list.
type PersistHistory struct {
	UserID  string
	History []models.HistoryEntry
}

// PersistUser writes the full user record.
type PersistUser struct {
	User models.User
}

// PersistChat writes the user's full chat transcript.
type PersistChat struct {
	UserID   string
	Messages []models.Message
}

func (PersistHistory) isEffect() {}
func (PersistUser) isEffect()    {}
func (PersistChat) isEffect()    {}
