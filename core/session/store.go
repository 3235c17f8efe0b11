package session

import "context"

// Store defines the persistence interface for sessions.
// Implementations must handle concurrent access safely.
type Store interface {
	// Save inserts the session row. Key collisions surface as errors; they
	// are astronomically unlikely given the key entropy.
	Save(ctx context.Context, sess Session) error

	// FindByKey returns the session with the given key, or ErrNotFound.
	// A key that never existed and a key that was deleted are
	// indistinguishable.
	FindByKey(ctx context.Context, key string) (Session, error)

	// Delete removes the session row and reports whether a row was
	// actually removed. Deleting a nonexistent session is not an error.
	Delete(ctx context.Context, key string) (bool, error)
}
