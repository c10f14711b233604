package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountLocked signals temporary lockout after repeated failed attempts.
	// Callers map it to a status distinguishable from a plain credential failure.
	ErrAccountLocked = errors.New("account locked")
	// ErrDuplicateEmail is a uniqueness conflict on an email write.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidToken covers malformed tokens, bad signatures, and tokens
	// whose account no longer authenticates.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)
