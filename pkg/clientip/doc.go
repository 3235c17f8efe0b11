// Package clientip extracts the real client IP from HTTP requests served
// behind proxies, load balancers, or CDNs.
//
// Headers are consulted in priority order: CF-Connecting-IP,
// DO-Connecting-IP, X-Forwarded-For (leftmost entry), X-Real-IP, then the
// connection's RemoteAddr. Candidates are validated and normalized with
// net.ParseIP; invalid values and the unspecified address are skipped.
// GetIP never panics; when nothing parses it falls back to the raw
// RemoteAddr string.
//
//	ip := clientip.GetIP(r)
package clientip
