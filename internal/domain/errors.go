package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP statuses with errors.Is.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidLinkRole   = errors.New("invalid link role")
)
