package session_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/core/session"
)

func TestGenerateKey(t *testing.T) {
	t.Run("32 bytes of entropy, url-safe encoding", func(t *testing.T) {
		key, err := session.GenerateKey()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(key)
		require.NoError(t, err, "key must be unpadded url-safe base64")
		assert.Len(t, raw, 32)
	})

	t.Run("keys never collide", func(t *testing.T) {
		const n = 100_000
		seen := make(map[string]struct{}, n)
		for range n {
			key, err := session.GenerateKey()
			require.NoError(t, err)

			_, dup := seen[key]
			require.False(t, dup, "duplicate session key generated")
			seen[key] = struct{}{}
		}
	})
}

func TestNew(t *testing.T) {
	sess, err := session.New(42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), sess.UserID)
	assert.NotEmpty(t, sess.Key)

	other, err := session.New(42)
	require.NoError(t, err)
	assert.NotEqual(t, sess.Key, other.Key, "each session gets its own key")
}
