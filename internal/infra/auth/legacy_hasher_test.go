package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyHasher_Hash(t *testing.T) {
	hasher := NewLegacyHasher()

	hash := hasher.Hash("123456", "5C5AB38E-E64B-48E3-B118-0B1F115D2BBF")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "123456", hash)

	// Deterministic: same password and salt always hash identically.
	assert.Equal(t, hash, hasher.Hash("123456", "5C5AB38E-E64B-48E3-B118-0B1F115D2BBF"))

	// Changing either input changes the result.
	assert.NotEqual(t, hash, hasher.Hash("123457", "5C5AB38E-E64B-48E3-B118-0B1F115D2BBF"))
	assert.NotEqual(t, hash, hasher.Hash("123456", "5C5AB38E-E64B-48E3-B118-0B1F115D2BBE"))
}

// The hash values below pin the exact salt+text+salt, three-round,
// uppercase-hex contract. A change here means stored credentials stop
// verifying.
func TestLegacyHasher_KnownVectors(t *testing.T) {
	hasher := NewLegacyHasher()

	vectors := []struct {
		password string
		salt     string
		expected string
	}{
		{"123456", "5C5AB38E-E64B-48E3-B118-0B1F115D2BBF", "D85AB207D84617AB0596E293E063D77D"},
		{"password", "SALT", "CDEB95C058A1E1324C70876713986331"},
	}

	for _, v := range vectors {
		assert.Equal(t, v.expected, hasher.Hash(v.password, v.salt))
	}
}

func TestLegacyHasher_UppercaseHex(t *testing.T) {
	hasher := NewLegacyHasher()

	hash := hasher.Hash("secret", "A")
	require.Len(t, hash, 32)
	for _, r := range hash {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'), "unexpected rune %q", r)
	}
}

func TestLegacyHasher_NewSalt(t *testing.T) {
	hasher := NewLegacyHasher()

	s1 := hasher.NewSalt()
	s2 := hasher.NewSalt()
	assert.NotEqual(t, s1, s2)
	assert.Len(t, s1, 36)
	// Salts are stored uppercase.
	for _, r := range s1 {
		assert.False(t, r >= 'a' && r <= 'z', "salt must not contain lowercase: %q", s1)
	}
}
