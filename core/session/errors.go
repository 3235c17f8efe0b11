package session

import "errors"

var (
	// ErrNotFound is returned when a session cannot be found in the store.
	ErrNotFound = errors.New("session not found")

	// ErrKeyGeneration is returned when the secure random source fails
	// during key generation.
	ErrKeyGeneration = errors.New("failed to generate session key")
)
