package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles. A super-admin carries no extra capabilities today; the
// distinction is kept for parity with provisioning tooling.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Admin is the single privileged identity of the backend.
// Lockout state lives on the row itself so a plain account fetch is enough
// to evaluate every login decision.
type Admin struct {
	AdminID        uuid.UUID
	Email          string
	PasswordHash   string
	Name           string
	Role           string
	IsActive       bool
	LastLoginAt    *time.Time
	FailedAttempts int
	LockedUntil    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLocked reports whether the account is inside an active lockout window.
// It is always derived from LockedUntil; no stored flag exists that could
// drift from it.
func (a Admin) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && a.LockedUntil.After(now)
}

// ValidRole reports whether role is one of the two admin roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
