// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"store/internal/domain/service"

	"github.com/google/uuid"
)

// hashRounds is how many times the digest is reapplied. Fixed by the stored
// data; changing it would invalidate every existing credential.
const hashRounds = 3

// legacyHasher reproduces the credential scheme the store's existing rows
// were written with: the password is wrapped in the salt on both sides,
// digested with MD5, rendered as uppercase hex, and the whole step is
// applied three times. MD5 is kept solely for compatibility with that
// stored data.
type legacyHasher struct{}

// NewLegacyHasher is the constructor for legacyHasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewLegacyHasher() service.CredentialHasher {
	return &legacyHasher{}
}

// NewSalt generates a random salt, rendered uppercase to match the format
// of the salts already in the table.
func (h *legacyHasher) NewSalt() string {
	return strings.ToUpper(uuid.New().String())
}

// Hash derives the stored credential value: hex_upper(md5(salt+h+salt)),
// iterated hashRounds times starting from the raw password.
func (h *legacyHasher) Hash(rawPassword, salt string) string {
	value := rawPassword
	for i := 0; i < hashRounds; i++ {
		sum := md5.Sum([]byte(salt + value + salt))
		value = strings.ToUpper(hex.EncodeToString(sum[:]))
	}

	return value
}
