package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher stores admin passwords as bcrypt hashes. Each Hash call
// draws a fresh random salt, so the same password never produces the same
// stored hash twice; that also means a password change to the identical
// value still rotates the hash on disk.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps the configured cost into bcrypt's valid range;
// out-of-range values fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
