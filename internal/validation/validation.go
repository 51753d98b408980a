package validation

import (
	"fmt"
	"strings"
)

// Error represents a user-correctable input error.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks that a username is present.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return Error{Field: "username", Message: "username is required"}
	}
	return nil
}

// ValidatePassword checks that a password is present.
func ValidatePassword(password string) error {
	if password == "" {
		return Error{Field: "password", Message: "password is required"}
	}
	return nil
}

// ValidateAvatar checks that an avatar token is present.
func ValidateAvatar(avatar string) error {
	if strings.TrimSpace(avatar) == "" {
		return Error{Field: "avatar", Message: "avatar is required"}
	}
	return nil
}

// ValidatePIN checks that a PIN is exactly four decimal digits.
func ValidatePIN(pin string) error {
	if len(pin) != 4 {
		return Error{Field: "pin", Message: "PIN must be exactly 4 digits"}
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return Error{Field: "pin", Message: "PIN must contain only digits"}
		}
	}
	return nil
}
