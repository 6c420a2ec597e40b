// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is for password hashing: store only the hash, then verify user
// input by comparing the plaintext against the stored hash. Implementations
// (like bcrypt) live in this package behind a small interface.
package hash

// Hash hashes plaintext secrets and verifies them against stored hashes.
type Hash interface {
	// Hash produces a one-way hash of plaintext.
	Hash(plaintext string) ([]byte, error)

	// Verify reports whether plaintext matches the stored hashed value.
	Verify(hashed, plaintext string) bool
}
