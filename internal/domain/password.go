package domain

import "fmt"

const minPasswordLength = 6

// ValidatePassword enforces the admin password policy.
// The single admin account keeps the original minimum-length rule; strength
// beyond that is left to the operator choosing the password.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
