package service

import (
	"fmt"
	"strings"

	"drsparkle/internal/credentials"
	"drsparkle/internal/models"
	"drsparkle/internal/repository"
	"drsparkle/internal/validation"
)

// AuthService is the credential store: it creates, authenticates and
// recovers accounts. Plaintext secrets are never persisted.
type AuthService struct {
	users *repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// SignUpParent registers a new parent account. The returned user carries
// the generated secret code so the caller can display it exactly once.
func (s *AuthService) SignUpParent(username, password, avatar string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, err
	}

	userID := models.NormalizeID(username)
	existing, err := s.users.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	salt, err := credentials.GenerateSalt()
	if err != nil {
		return nil, err
	}
	passwordHash, err := credentials.HashValue(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	secretCode, err := credentials.GenerateSecretCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret code: %w", err)
	}

	user := &models.User{
		ID:              userID,
		Username:        strings.TrimSpace(username),
		Avatar:          avatar,
		PasswordHash:    passwordHash,
		Salt:            salt,
		SecretCode:      secretCode,
		Role:            models.RoleParent,
		ChildIDs:        []string{},
		HasSeenTutorial: true,
		AuthProvider:    models.AuthPassword,
	}

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// SignInOrLinkExternal signs in an externally-provisioned parent, creating
// the account on first sight. Accounts registered with a password cannot be
// taken over by an external identity.
func (s *AuthService) SignInOrLinkExternal(externalID, displayName, avatar string) (*models.User, error) {
	if err := validation.ValidateUsername(externalID); err != nil {
		return nil, err
	}

	userID := models.NormalizeID(externalID)
	existing, err := s.users.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if existing.AuthProvider != models.AuthExternal {
			return nil, ErrProviderMismatch
		}
		return existing, nil
	}

	secretCode, err := credentials.GenerateSecretCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret code: %w", err)
	}

	user := &models.User{
		ID:              userID,
		Username:        strings.TrimSpace(displayName),
		Avatar:          avatar,
		SecretCode:      secretCode,
		Role:            models.RoleParent,
		ChildIDs:        []string{},
		HasSeenTutorial: true,
		AuthProvider:    models.AuthExternal,
	}

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// SignIn authenticates a parent account by password.
func (s *AuthService) SignIn(username, password string) (*models.User, error) {
	user, err := s.users.Get(models.NormalizeID(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if !user.IsParent() {
		return nil, ErrRoleMismatch
	}
	if user.AuthProvider == models.AuthExternal {
		return nil, ErrProviderMismatch
	}
	if user.Salt == "" || user.PasswordHash == "" {
		return nil, ErrMissingCredential
	}

	ok, err := credentials.VerifyValue(password, user.Salt, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// SignInChild authenticates a child account by PIN. Child records created
// before game data existed are back-filled with the defaults.
func (s *AuthService) SignInChild(username, pin string) (*models.User, error) {
	user, err := s.users.Get(models.NormalizeID(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if !user.IsChild() {
		return nil, ErrRoleMismatch
	}
	if user.SaltPIN == "" || user.LoginPINHash == "" {
		return nil, ErrMissingCredential
	}

	ok, err := credentials.VerifyValue(pin, user.SaltPIN, user.LoginPINHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify PIN: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredential
	}

	if user.GameData == nil {
		user.GameData = models.DefaultGameData()
	}
	return user, nil
}

// FindBySecretCode looks up a parent by recovery code, case-insensitively.
// No match returns nil rather than an error.
func (s *AuthService) FindBySecretCode(code string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}

	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	for _, user := range users {
		if user.IsParent() && strings.ToLower(user.SecretCode) == normalized {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// ResetPassword re-derives the password hash under the account's existing
// salt. Only parent accounts with a stored salt are eligible.
func (s *AuthService) ResetPassword(userID, newPassword string) error {
	if userID == "" {
		return validation.Error{Field: "userId", Message: "user id is required"}
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}
	if !user.IsParent() {
		return ErrRoleMismatch
	}
	if user.Salt == "" {
		return ErrMissingCredential
	}

	hash, err := credentials.HashValue(newPassword, user.Salt)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// CreateChildAccount registers a child under the parent and returns the
// new child, the plaintext PIN for one-time display, and the updated
// parent record.
func (s *AuthService) CreateChildAccount(parent *models.User, username, avatar string) (*models.User, string, *models.User, error) {
	if parent == nil || !parent.IsParent() {
		return nil, "", nil, ErrRoleMismatch
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, "", nil, err
	}
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, "", nil, err
	}

	childID := models.NormalizeID(username)
	existing, err := s.users.Get(childID)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", nil, ErrDuplicateAccount
	}

	saltPIN, err := credentials.GenerateSalt()
	if err != nil {
		return nil, "", nil, err
	}
	pin, err := credentials.GeneratePIN()
	if err != nil {
		return nil, "", nil, err
	}
	pinHash, err := credentials.HashValue(pin, saltPIN)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	child := &models.User{
		ID:              childID,
		Username:        strings.TrimSpace(username),
		Avatar:          avatar,
		LoginPINHash:    pinHash,
		SaltPIN:         saltPIN,
		SecretCode:      models.SecretCodeNone,
		Role:            models.RoleChild,
		ParentID:        parent.ID,
		HasSeenTutorial: false,
		GameData:        models.DefaultGameData(),
	}
	if err := s.users.Save(child); err != nil {
		return nil, "", nil, fmt.Errorf("failed to create child: %w", err)
	}

	// Link the child under the stored parent record, not the caller's copy,
	// so a stale caller cannot drop siblings.
	updatedParent := parent
	stored, err := s.users.Get(parent.ID)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get parent: %w", err)
	}
	if stored != nil {
		stored.ChildIDs = append(stored.ChildIDs, child.ID)
		if err := s.users.Save(stored); err != nil {
			return nil, "", nil, fmt.Errorf("failed to link child to parent: %w", err)
		}
		updatedParent = stored
	}

	return child, pin, updatedParent, nil
}

// UpdateUser merge-patches a stored user by id. Missing users and the
// guest pseudo-id are no-ops.
func (s *AuthService) UpdateUser(patch models.UserPatch) error {
	if patch.ID == "" || patch.ID == models.GuestID {
		return nil
	}
	user, err := s.users.Get(patch.ID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil
	}
	user.Apply(patch)
	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// SaveUser persists a full user record by id. Guest is never persisted.
func (s *AuthService) SaveUser(user *models.User) error {
	if user == nil || user.ID == "" || user.ID == models.GuestID {
		return nil
	}
	if err := s.users.Save(user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// DeleteUser removes a user from the credential table unconditionally.
// Cascading deletion of per-user data belongs to the account graph.
func (s *AuthService) DeleteUser(id string) error {
	return s.users.Delete(id)
}
