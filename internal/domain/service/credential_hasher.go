// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher reproduces the credential scheme of the legacy store
// database: a per-account random salt and a deterministic salted, iterated
// digest. Hashing the same password with the same salt always yields the
// same value, so verification is plain equality against the stored hash.
//
// The scheme is kept for compatibility with existing stored credentials, not
// as a recommendation.
type CredentialHasher interface {
	// NewSalt generates a fresh random salt for a new account.
	NewSalt() string

	// Hash derives the stored credential value from a raw password and salt.
	Hash(rawPassword, salt string) string
}
