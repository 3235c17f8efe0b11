// Package session defines the server-side login session: a high-entropy
// bearer key mapped to a user id.
//
// A session key is 32 bytes from crypto/rand encoded as unpadded URL-safe
// base64. Anyone presenting a valid key is treated as the owning user, so
// keys must never be logged or exposed outside the signed session cookie.
//
// Sessions have no server-side expiry. A row lives until an explicit logout
// deletes it; only the client-side cookie lapses on its own. The Store
// interface is implemented by the repository package against Postgres.
package session
