package service

import "errors"

var (
	ErrDuplicateAccount  = errors.New("username already exists, please choose another one or sign in")
	ErrNotFound          = errors.New("account not found, have you signed up yet")
	ErrRoleMismatch      = errors.New("this login is for the other account type")
	ErrProviderMismatch  = errors.New("this account uses a different sign-in method")
	ErrInvalidCredential = errors.New("incorrect password or PIN, please try again")
	ErrMissingCredential = errors.New("account has no stored credential, please reset your password")
	ErrInvalidFormat     = errors.New("invalid backup file")
)
