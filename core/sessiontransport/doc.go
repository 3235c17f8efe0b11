// Package sessiontransport moves sessions between the server and the browser
// as a pair of cookies.
//
// The private cookie (default "session") carries the session key, HMAC-signed
// via the cookie manager and marked HttpOnly, expiring four weeks after
// issuance. The public cookie (default "session_pub") carries only the fixed
// sentinel "authenticated", is readable by client-side script and must never
// be trusted for authorization; it exists so UIs can branch without an extra
// round trip. Both cookies are always set together and cleared together.
//
//	transport := sessiontransport.NewCookie(cookieMgr)
//	transport.Attach(w, sess) // set both cookies
//	key, err := transport.ReadKey(r)
//	transport.Remove(w)       // clear both cookies
package sessiontransport
