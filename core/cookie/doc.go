// Package cookie provides an HTTP cookie manager with HMAC-SHA256 signing
// and multi-secret rotation.
//
// Signed cookies are tamper evident: the value is stored as
// base64(value)|base64(hmac) and verified with constant-time comparison
// against every configured secret, so old secrets keep verifying while new
// cookies are signed with the first one.
//
//	mgr, err := cookie.New([]string{secret})
//	mgr.SetSigned(w, "session", key,
//		cookie.WithHTTPOnly(true),
//		cookie.WithMaxAge(maxAge),
//	)
//	key, err := mgr.GetSigned(r, "session")
//	mgr.Delete(w, "session")
package cookie
