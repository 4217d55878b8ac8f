package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt consumes; longer passwords are
// hashed and compared on their first MaxPasswordBytes bytes.
const MaxPasswordBytes = 72

// BcryptHasher hashes passwords with bcrypt
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher creates a bcrypt hasher; a zero cost selects DefaultBcryptCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash returns the bcrypt hash of plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns nil when plaintext matches hash
func (h *BcryptHasher) Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plaintext))
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
