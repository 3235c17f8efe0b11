package sessiontransport

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/session"
)

const (
	// DefaultCookieName is the name of the private session cookie.
	DefaultCookieName = "session"
	// DefaultPublicCookieName is the name of the public marker cookie.
	DefaultPublicCookieName = "session_pub"
	// DefaultTTL is the client-side lifetime of the cookie pair.
	DefaultTTL = 4 * 7 * 24 * time.Hour

	// publicSentinel is the fixed value of the public marker cookie.
	publicSentinel = "authenticated"
)

// Config provides environment-based configuration for the cookie transport.
type Config struct {
	CookieName       string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	PublicCookieName string        `env:"SESSION_PUBLIC_COOKIE_NAME" envDefault:"session_pub"`
	TTL              time.Duration `env:"SESSION_COOKIE_TTL" envDefault:"672h"` // 4 weeks
}

// Cookie encodes sessions into the browser-facing cookie pair and decodes
// them back. It owns only the HTTP surface; session rows are managed by the
// auth service.
type Cookie struct {
	cookies    *cookie.Manager
	name       string
	publicName string
	ttl        time.Duration
}

// NewCookie creates a cookie transport with default names and TTL.
func NewCookie(mgr *cookie.Manager) *Cookie {
	return &Cookie{
		cookies:    mgr,
		name:       DefaultCookieName,
		publicName: DefaultPublicCookieName,
		ttl:        DefaultTTL,
	}
}

// NewCookieFromConfig creates a cookie transport from configuration.
func NewCookieFromConfig(cfg Config, mgr *cookie.Manager) *Cookie {
	t := NewCookie(mgr)
	if cfg.CookieName != "" {
		t.name = cfg.CookieName
	}
	if cfg.PublicCookieName != "" {
		t.publicName = cfg.PublicCookieName
	}
	if cfg.TTL > 0 {
		t.ttl = cfg.TTL
	}
	return t
}

// Attach writes the cookie pair for the given session into the response:
// the signed private cookie holding the session key, and the public marker.
// Both expire at the same fixed horizon from now.
func (c *Cookie) Attach(w http.ResponseWriter, sess session.Session) error {
	expires := time.Now().Add(c.ttl)
	maxAge := int(c.ttl.Seconds())

	if err := c.cookies.SetSigned(w, c.name, sess.Key,
		cookie.WithHTTPOnly(true),
		cookie.WithExpires(expires),
		cookie.WithMaxAge(maxAge),
	); err != nil {
		return err
	}

	return c.cookies.Set(w, c.publicName, publicSentinel,
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithExpires(expires),
		cookie.WithMaxAge(maxAge),
	)
}

// Remove clears both cookies from the response, regardless of whether the
// underlying session row still exists. Callers sequence row deletion before
// calling Remove.
func (c *Cookie) Remove(w http.ResponseWriter) {
	c.cookies.Delete(w, c.name, cookie.WithHTTPOnly(true))
	c.cookies.Delete(w, c.publicName,
		cookie.WithHTTPOnly(false),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)
}

// ReadKey extracts and verifies the session key from the inbound request.
// A missing, forged or corrupted cookie uniformly yields ErrNoSessionCookie:
// the caller cannot (and must not) distinguish those cases.
func (c *Cookie) ReadKey(r *http.Request) (string, error) {
	key, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return "", errors.Join(ErrNoSessionCookie, err)
	}
	if key == "" {
		return "", ErrNoSessionCookie
	}
	return key, nil
}
