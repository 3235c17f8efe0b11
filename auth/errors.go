package auth

import "errors"

var (
	// ErrNotAuthenticated is returned when no valid session accompanies a
	// request that requires one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyAuthenticated is returned when login or signup is attempted
	// with a valid session already attached.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrInvalidCredentials is returned for any bad email/password
	// combination. Unknown email, wrong password and corrupt stored hash
	// all collapse into this single outcome.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when signup targets an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound is returned by UserStore lookups that match no row.
	ErrUserNotFound = errors.New("user not found")
)
