package password

import "errors"

var (
	// ErrInvalidHash is returned when an encoded hash string is malformed,
	// uses an unsupported algorithm or version, or carries parameters
	// outside the accepted bounds.
	ErrInvalidHash = errors.New("invalid password hash")

	// ErrEmptyPassword is returned when hashing an empty plaintext.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrSaltGeneration is returned when the secure random source fails.
	ErrSaltGeneration = errors.New("failed to generate password salt")
)
