package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/core/password"
)

func TestHashAndVerify(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := password.Hash("hunter2")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

		ok, err := password.Verify(hash, "hunter2")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		hash, err := password.Hash("correct horse battery staple")
		require.NoError(t, err)

		ok, err := password.Verify(hash, "tr0ub4dor&3")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unique salt per hash", func(t *testing.T) {
		h1, err := password.Hash("same-password")
		require.NoError(t, err)
		h2, err := password.Hash("same-password")
		require.NoError(t, err)

		assert.NotEqual(t, h1, h2)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})
}

func TestVerify_MalformedHashes(t *testing.T) {
	malformed := map[string]string{
		"empty string":          "",
		"not a hash":            "plaintext-leaked-into-column",
		"wrong algorithm":       "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"wrong version":         "$argon2id$v=18$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"missing segments":      "$argon2id$v=19$m=65536,t=3,p=2",
		"bad parameter block":   "$argon2id$v=19$m=abc,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"zero cost":             "$argon2id$v=19$m=0,t=0,p=0$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"absurd memory":         "$argon2id$v=19$m=4294967295,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"invalid base64 salt":   "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaGhhc2hoYXNoaGFzaA",
		"invalid base64 digest": "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$!!!",
		"salt too short":        "$argon2id$v=19$m=65536,t=3,p=2$c2E$aGFzaGhhc2hoYXNoaGFzaA",
	}

	for name, hash := range malformed {
		t.Run(name, func(t *testing.T) {
			ok, err := password.Verify(hash, "whatever")
			assert.False(t, ok)
			assert.ErrorIs(t, err, password.ErrInvalidHash)
		})
	}
}

func TestVerify_ParamsFromHashString(t *testing.T) {
	// Hashes created with smaller-than-default cost still verify, so cost
	// upgrades don't lock out existing credentials.
	small := password.Params{
		Memory:      16 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	hash, err := password.HashWithParams("legacy-password", small)
	require.NoError(t, err)

	ok, err := password.Verify(hash, "legacy-password")
	require.NoError(t, err)
	assert.True(t, ok)
}
