package auth

import "context"

// User is an account record. PasswordHash is the argon2id envelope produced
// by core/password; the plaintext never leaves the signup/login call stack.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}

// UserStore defines credential persistence. Email matching is exact
// (case-sensitive): "Alice@example.com" and "alice@example.com" are two
// different accounts.
type UserStore interface {
	// FindByID returns the user with the given id, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (User, error)

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (User, error)

	// EmailTaken reports whether an account with the email already exists.
	EmailTaken(ctx context.Context, email string) (bool, error)

	// Create inserts a new credential row. A uniqueness violation on email
	// returns ErrEmailTaken; this is the backstop for the race window
	// between EmailTaken and Create.
	Create(ctx context.Context, email, passwordHash string) error
}
