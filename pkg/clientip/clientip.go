package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers checked in priority order. CDN headers come first because
// they are set by the edge and cannot be forged past it.
var headerPriority = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP from the request, walking the proxy
// headers in priority order and falling back to RemoteAddr. It never
// returns an empty string.
func GetIP(r *http.Request) string {
	for _, header := range headerPriority {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may carry a chain "client, proxy1, proxy2";
		// the leftmost entry is the original client.
		if header == "X-Forwarded-For" {
			value, _, _ = strings.Cut(value, ",")
		}

		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates and canonicalizes an IP string. 0.0.0.0 is
// rejected because it signals "no valid client address".
func normalize(value string) string {
	ip := net.ParseIP(strings.TrimSpace(value))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
