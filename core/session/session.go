package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// keyLength is the raw entropy of a session key before encoding.
const keyLength = 32

// Session represents a single active login session.
type Session struct {
	// Key uniquely identifies the session and acts as a bearer capability.
	Key string

	// UserID identifies the logged-in user. Many sessions may reference the
	// same user.
	UserID int64
}

// New creates a session for the given user with a freshly generated key.
// Fails if the secure random source is unavailable; the key is never
// silently degraded.
func New(userID int64) (Session, error) {
	key, err := GenerateKey()
	if err != nil {
		return Session{}, err
	}
	return Session{Key: key, UserID: userID}, nil
}

// GenerateKey produces a cryptographically secure session key: 32 random
// bytes encoded as unpadded URL-safe base64.
func GenerateKey() (string, error) {
	b := make([]byte, keyLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrKeyGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
