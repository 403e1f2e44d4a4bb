// Package security provides the bcrypt implementation of the password
// hashing port.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/userdash/dashboard-backend/internal/domain/ports"
)

// DefaultCost is deliberately slow. Matches the cost the original
// deployment used for its stored hashes.
const DefaultCost = 14

// BcryptHasher implements ports.PasswordHasher. Hashes are
// self-describing: algorithm, cost, and salt are embedded, so
// verification needs no separately stored salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given cost. Costs outside
// the bcrypt range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare distinguishes a wrong password from a stored hash bcrypt
// cannot parse at all: the latter means the record was written without
// hashing and is reported as ports.ErrCorruptHash.
func (h *BcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return err
	}
	return ports.ErrCorruptHash
}
