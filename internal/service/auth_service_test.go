package service

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"drsparkle/internal/models"
	"drsparkle/internal/repository"
	"drsparkle/internal/storage"
	"drsparkle/internal/validation"
)

func newAuthService() (*AuthService, *repository.UserRepository) {
	store := storage.NewMemoryStore()
	users := repository.NewUserRepository(store)
	return NewAuthService(users), users
}

func TestSignUpAndSignIn(t *testing.T) {
	auth, _ := newAuthService()

	created, err := auth.SignUpParent("Alice", "s3cret-pass", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}
	if created.ID != "alice" {
		t.Errorf("Expected id 'alice', got %q", created.ID)
	}
	if created.Username != "Alice" {
		t.Errorf("Expected username 'Alice', got %q", created.Username)
	}
	if !created.IsParent() {
		t.Error("Expected a parent account")
	}
	if created.AuthProvider != models.AuthPassword {
		t.Errorf("Expected password provider, got %q", created.AuthProvider)
	}
	if !created.HasSeenTutorial {
		t.Error("Expected parents to skip the tutorial")
	}
	if created.PasswordHash == "s3cret-pass" || created.PasswordHash == "" {
		t.Error("Password must be stored as a hash")
	}

	codePattern := regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+[0-9]{4}$`)
	if !codePattern.MatchString(created.SecretCode) {
		t.Errorf("Secret code %q does not match the expected shape", created.SecretCode)
	}

	signedIn, err := auth.SignIn("ALICE", "s3cret-pass")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if signedIn.ID != created.ID {
		t.Errorf("Expected to sign in as %q, got %q", created.ID, signedIn.ID)
	}

	if _, err := auth.SignIn("alice", "wrong-pass"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("Expected ErrInvalidCredential, got %v", err)
	}
	if _, err := auth.SignIn("nobody", "s3cret-pass"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	auth, _ := newAuthService()

	tests := []struct {
		name     string
		username string
		password string
		avatar   string
	}{
		{"empty username", "", "password", "🦷"},
		{"blank username", "   ", "password", "🦷"},
		{"empty password", "alice", "", "🦷"},
		{"empty avatar", "alice", "password", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.SignUpParent(tt.username, tt.password, tt.avatar)
			var vErr validation.Error
			if !errors.As(err, &vErr) {
				t.Errorf("Expected a validation error, got %v", err)
			}
		})
	}
}

func TestSignUpDuplicate(t *testing.T) {
	auth, _ := newAuthService()

	if _, err := auth.SignUpParent("alice", "password", "🦷"); err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}
	if _, err := auth.SignUpParent("  Alice ", "other-password", "🪥"); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("Expected ErrDuplicateAccount, got %v", err)
	}
}

func TestSignInRoleAndProviderMismatch(t *testing.T) {
	auth, _ := newAuthService()

	parent, err := auth.SignUpParent("alice", "password", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}
	_, pin, _, err := auth.CreateChildAccount(parent, "bobby", "🦖")
	if err != nil {
		t.Fatalf("CreateChildAccount failed: %v", err)
	}

	if _, err := auth.SignIn("bobby", "password"); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("Expected ErrRoleMismatch for child via SignIn, got %v", err)
	}
	if _, err := auth.SignInChild("alice", pin); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("Expected ErrRoleMismatch for parent via SignInChild, got %v", err)
	}

	external, err := auth.SignInOrLinkExternal("ext-123", "External Parent", "🌐")
	if err != nil {
		t.Fatalf("SignInOrLinkExternal failed: %v", err)
	}
	if external.AuthProvider != models.AuthExternal {
		t.Errorf("Expected external provider, got %q", external.AuthProvider)
	}
	if _, err := auth.SignIn("ext-123", "anything"); !errors.Is(err, ErrProviderMismatch) {
		t.Errorf("Expected ErrProviderMismatch, got %v", err)
	}
	if _, err := auth.SignInOrLinkExternal("alice", "Alice", "🦷"); !errors.Is(err, ErrProviderMismatch) {
		t.Errorf("Expected ErrProviderMismatch when linking over a password account, got %v", err)
	}
}

func TestSignInOrLinkExternalIsIdempotent(t *testing.T) {
	auth, _ := newAuthService()

	first, err := auth.SignInOrLinkExternal("ext-123", "External Parent", "🌐")
	if err != nil {
		t.Fatalf("First external sign-in failed: %v", err)
	}
	second, err := auth.SignInOrLinkExternal("ext-123", "Renamed", "🪐")
	if err != nil {
		t.Fatalf("Second external sign-in failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Expected the same account, got %q and %q", first.ID, second.ID)
	}
	if second.Username != first.Username {
		t.Errorf("Repeat sign-in must not rename the account, got %q", second.Username)
	}
	if second.SecretCode != first.SecretCode {
		t.Error("Repeat sign-in must not rotate the secret code")
	}
}

func TestCreateChildAccount(t *testing.T) {
	auth, users := newAuthService()

	parent, err := auth.SignUpParent("alice", "password", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}

	child, pin, updatedParent, err := auth.CreateChildAccount(parent, "Bobby", "🦖")
	if err != nil {
		t.Fatalf("CreateChildAccount failed: %v", err)
	}
	if !regexp.MustCompile(`^[0-9]{4}$`).MatchString(pin) {
		t.Errorf("Expected a 4-digit PIN, got %q", pin)
	}
	if !child.IsChild() {
		t.Error("Expected a child account")
	}
	if child.ParentID != parent.ID {
		t.Errorf("Expected parent id %q, got %q", parent.ID, child.ParentID)
	}
	if child.SecretCode != models.SecretCodeNone {
		t.Errorf("Children have no recovery code, got %q", child.SecretCode)
	}
	if child.GameData == nil || child.GameData.Points != 0 {
		t.Errorf("Expected default game data, got %+v", child.GameData)
	}
	if len(updatedParent.ChildIDs) != 1 || updatedParent.ChildIDs[0] != "bobby" {
		t.Errorf("Expected parent linked to [bobby], got %v", updatedParent.ChildIDs)
	}

	stored, err := users.Get(parent.ID)
	if err != nil {
		t.Fatalf("Failed to read parent: %v", err)
	}
	if len(stored.ChildIDs) != 1 || stored.ChildIDs[0] != "bobby" {
		t.Errorf("Expected stored parent linked to [bobby], got %v", stored.ChildIDs)
	}

	signedIn, err := auth.SignInChild("bobby", pin)
	if err != nil {
		t.Fatalf("SignInChild failed: %v", err)
	}
	if signedIn.ID != "bobby" {
		t.Errorf("Expected to sign in as bobby, got %q", signedIn.ID)
	}
	wrongPIN := "0000"
	if pin == wrongPIN {
		wrongPIN = "1111"
	}
	if _, err := auth.SignInChild("bobby", wrongPIN); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("Expected ErrInvalidCredential for the wrong PIN, got %v", err)
	}

	if _, _, _, err := auth.CreateChildAccount(parent, "alice", "🦖"); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("Expected ErrDuplicateAccount for a taken username, got %v", err)
	}
	if _, _, _, err := auth.CreateChildAccount(child, "sibling", "🦕"); !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("Expected ErrRoleMismatch for a child creator, got %v", err)
	}
}

func TestFindBySecretCode(t *testing.T) {
	auth, _ := newAuthService()

	parent, err := auth.SignUpParent("alice", "password", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}
	if _, _, _, err := auth.CreateChildAccount(parent, "bobby", "🦖"); err != nil {
		t.Fatalf("CreateChildAccount failed: %v", err)
	}

	found, err := auth.FindBySecretCode(strings.ToUpper(parent.SecretCode))
	if err != nil {
		t.Fatalf("FindBySecretCode failed: %v", err)
	}
	if found == nil || found.ID != parent.ID {
		t.Errorf("Expected to recover %q, got %+v", parent.ID, found)
	}

	missing, err := auth.FindBySecretCode("RedFoxStar0000")
	if err != nil {
		t.Fatalf("FindBySecretCode failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected no match, got %+v", missing)
	}

	// Children carry the "N/A" placeholder; looking it up must never hit one.
	blank, err := auth.FindBySecretCode("  ")
	if err != nil {
		t.Fatalf("FindBySecretCode failed: %v", err)
	}
	if blank != nil {
		t.Errorf("Expected nil for a blank code, got %+v", blank)
	}
	placeholder, err := auth.FindBySecretCode(models.SecretCodeNone)
	if err != nil {
		t.Fatalf("FindBySecretCode failed: %v", err)
	}
	if placeholder != nil {
		t.Errorf("The placeholder code must not resolve, got %+v", placeholder)
	}
}

func TestResetPassword(t *testing.T) {
	auth, users := newAuthService()

	parent, err := auth.SignUpParent("alice", "old-password", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}
	originalSalt := parent.Salt

	if err := auth.ResetPassword(parent.ID, "new-password"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	stored, err := users.Get(parent.ID)
	if err != nil {
		t.Fatalf("Failed to read user: %v", err)
	}
	if stored.Salt != originalSalt {
		t.Error("ResetPassword must keep the existing salt")
	}
	if stored.SecretCode != parent.SecretCode {
		t.Error("ResetPassword must keep the secret code")
	}

	if _, err := auth.SignIn("alice", "old-password"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("Expected the old password to stop working, got %v", err)
	}
	if _, err := auth.SignIn("alice", "new-password"); err != nil {
		t.Errorf("Expected the new password to work, got %v", err)
	}

	if err := auth.ResetPassword("nobody", "new-password"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserPatch(t *testing.T) {
	auth, users := newAuthService()

	parent, err := auth.SignUpParent("alice", "password", "🦷")
	if err != nil {
		t.Fatalf("SignUpParent failed: %v", err)
	}

	avatar := "🪥"
	seen := true
	version := "2.0.0"
	err = auth.UpdateUser(models.UserPatch{
		ID:              parent.ID,
		Avatar:          &avatar,
		HasSeenTutorial: &seen,
		LastSeenVersion: &version,
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	stored, err := users.Get(parent.ID)
	if err != nil {
		t.Fatalf("Failed to read user: %v", err)
	}
	if stored.Avatar != "🪥" {
		t.Errorf("Expected patched avatar, got %q", stored.Avatar)
	}
	if stored.LastSeenVersion != "2.0.0" {
		t.Errorf("Expected patched version, got %q", stored.LastSeenVersion)
	}
	if stored.PasswordHash != parent.PasswordHash {
		t.Error("Patching must not touch credentials")
	}

	// Unknown ids and the guest pseudo-id are silent no-ops.
	if err := auth.UpdateUser(models.UserPatch{ID: "nobody", Avatar: &avatar}); err != nil {
		t.Errorf("Expected a no-op for an unknown id, got %v", err)
	}
	if err := auth.UpdateUser(models.UserPatch{ID: models.GuestID, Avatar: &avatar}); err != nil {
		t.Errorf("Expected a no-op for the guest id, got %v", err)
	}
	all, err := users.All()
	if err != nil {
		t.Fatalf("Failed to read users: %v", err)
	}
	if _, ok := all[models.GuestID]; ok {
		t.Error("The guest pseudo-user must never be persisted")
	}
}
