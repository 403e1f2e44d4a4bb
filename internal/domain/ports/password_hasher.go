package ports

import "errors"

// ErrCorruptHash reports a stored hash that is not well formed for the
// hashing scheme. Login surfaces it as a distinct "contact the
// administrator" failure rather than the generic credentials message.
var ErrCorruptHash = errors.New("stored password hash is malformed")

// PasswordHasher hashes plaintext passwords into a self-describing
// format (algorithm, cost, salt, digest) and verifies candidates
// against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil on match, ErrCorruptHash when the stored hash
	// cannot be parsed, and any other error on mismatch.
	Compare(hash, password string) error
}
