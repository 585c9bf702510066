// Package crypto provides the password hashing primitives used by the
// authentication core. Only a vetted adaptive hash is offered; there is no
// reversible or checksum-style fallback.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the one-way credential hashing contract consumed by the
// auth service. Verify(p, Hash(p)) is true for every p; digests are never
// invertible in practical time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// bcryptHasher implements PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a PasswordHasher with the given bcrypt work
// factor. A cost of zero (or any value below bcrypt.MinCost) falls back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash derives a bcrypt digest of plaintext. The digest embeds its own salt
// and cost, so no extra parameters need to be stored alongside it.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plaintext matches the stored bcrypt digest.
// Any comparison failure, including a malformed digest, yields false.
func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false
	}

	return err == nil
}
