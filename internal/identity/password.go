package identity

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes. The plaintext is never stored or logged.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is not an
	// error, it is a boolean false mapped to an authentication failure by
	// the caller.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt. Equal plaintexts
// produce different stored values thanks to the embedded salt, and the cost
// factor rate-limits brute force attempts.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Cost values outside
// the bcrypt range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
