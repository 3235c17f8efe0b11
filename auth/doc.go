// Package auth implements signup, login, logout and per-request identity
// resolution for the note service.
//
// The Service owns every session lifecycle transition: it verifies
// credentials, mints session keys, persists session rows and attaches or
// clears the cookie pair. The Guard is the read-only counterpart used on
// every protected route: it turns an inbound cookie into a validated User by
// resolving cookie -> session row -> user row, short-circuiting to
// ErrNotAuthenticated at the first gap.
//
// Failure outcomes are deliberately collapsed: an unknown email and a wrong
// password both surface as ErrInvalidCredentials, and a corrupt stored hash
// is indistinguishable from a wrong password. Infrastructure faults are the
// only errors that escape the sentinel taxonomy, and they map to 500s at the
// HTTP layer rather than 401s.
package auth
