package models

import "strings"

// Role distinguishes the two account variants sharing the User shape.
type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
)

// AuthProvider identifies how a parent account authenticates.
type AuthProvider string

const (
	AuthPassword AuthProvider = "password"
	AuthExternal AuthProvider = "externally-linked"
)

// GuestID is the ephemeral pseudo-user. It is never persisted and never
// included in exported snapshots.
const GuestID = "guest"

// SecretCodeNone marks accounts that have no recovery code (children).
const SecretCodeNone = "N/A"

// Upgrades holds the purchasable game upgrades for a child account.
type Upgrades struct {
	Shield  int `json:"shield"`
	Scanner int `json:"scanner"`
}

// GameData tracks a child's game progress.
type GameData struct {
	Points   int      `json:"points"`
	Upgrades Upgrades `json:"upgrades"`
}

// DefaultGameData returns the zero-progress game state for new or
// pre-gameData child accounts.
func DefaultGameData() *GameData {
	return &GameData{}
}

// User is the identity record for both account roles. Parent-only and
// child-only fields are empty for the other role.
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Avatar          string `json:"avatar"`
	SecretCode      string `json:"secretCode"`
	HasSeenTutorial bool   `json:"hasSeenTutorial"`
	LastSeenVersion string `json:"lastSeenVersion,omitempty"`

	Role Role `json:"role"`

	// Parent fields
	PasswordHash string       `json:"passwordHash,omitempty"`
	Salt         string       `json:"salt,omitempty"`
	ChildIDs     []string     `json:"childIds,omitempty"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`

	// Child fields
	LoginPINHash string    `json:"loginPinHash,omitempty"`
	SaltPIN      string    `json:"saltPin,omitempty"`
	ParentID     string    `json:"parentId,omitempty"`
	GameData     *GameData `json:"gameData,omitempty"`
}

// IsParent reports whether the user is a guardian account.
func (u *User) IsParent() bool {
	return u.Role == RoleParent
}

// IsChild reports whether the user is a dependent account.
func (u *User) IsChild() bool {
	return u.Role == RoleChild
}

// UserPatch is a merge-patch applied to a User by id. Nil fields are left
// untouched.
type UserPatch struct {
	ID              string
	Username        *string
	Avatar          *string
	HasSeenTutorial *bool
	LastSeenVersion *string
	ChildIDs        *[]string
	GameData        *GameData
}

// Apply merges the patch into the user in place.
func (u *User) Apply(p UserPatch) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.HasSeenTutorial != nil {
		u.HasSeenTutorial = *p.HasSeenTutorial
	}
	if p.LastSeenVersion != nil {
		u.LastSeenVersion = *p.LastSeenVersion
	}
	if p.ChildIDs != nil {
		u.ChildIDs = append([]string(nil), (*p.ChildIDs)...)
	}
	if p.GameData != nil {
		gd := *p.GameData
		u.GameData = &gd
	}
}

// NormalizeID derives the unique storage id from a username or external id.
func NormalizeID(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
