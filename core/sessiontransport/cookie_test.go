package sessiontransport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
)

const testSecret = "transport-test-secret-32-chars!!"

func newTransport(t *testing.T) *sessiontransport.Cookie {
	t.Helper()
	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	return sessiontransport.NewCookie(mgr)
}

func cookiesByName(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range w.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestAttach(t *testing.T) {
	transport := newTransport(t)

	sess, err := session.New(1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, transport.Attach(w, sess))

	cookies := cookiesByName(w)
	require.Len(t, cookies, 2, "attach must set exactly the cookie pair")

	private, ok := cookies["session"]
	require.True(t, ok)
	assert.True(t, private.HttpOnly, "private cookie must be http-only")
	assert.NotContains(t, private.Value, sess.Key, "key must not appear unsigned")
	assert.WithinDuration(t, time.Now().Add(sessiontransport.DefaultTTL), private.Expires, time.Minute,
		"private cookie expires four weeks from issuance")

	public, ok := cookies["session_pub"]
	require.True(t, ok)
	assert.Equal(t, "authenticated", public.Value)
	assert.False(t, public.HttpOnly, "public cookie must be script-readable")
	assert.Equal(t, http.SameSiteStrictMode, public.SameSite)
	assert.WithinDuration(t, private.Expires, public.Expires, time.Second,
		"both cookies share one lifetime")
}

func TestReadKey(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		transport := newTransport(t)

		sess, err := session.New(7)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, transport.Attach(w, sess))

		r := httptest.NewRequest("GET", "/", nil)
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}

		key, err := transport.ReadKey(r)
		require.NoError(t, err)
		assert.Equal(t, sess.Key, key)
	})

	t.Run("missing cookie", func(t *testing.T) {
		transport := newTransport(t)

		r := httptest.NewRequest("GET", "/", nil)
		_, err := transport.ReadKey(r)
		assert.ErrorIs(t, err, sessiontransport.ErrNoSessionCookie)
	})

	t.Run("forged cookie collapses to missing", func(t *testing.T) {
		transport := newTransport(t)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: "Zm9yZ2Vk|bm90LWEtc2ln"})

		_, err := transport.ReadKey(r)
		assert.ErrorIs(t, err, sessiontransport.ErrNoSessionCookie)
	})

	t.Run("public cookie alone grants nothing", func(t *testing.T) {
		transport := newTransport(t)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_pub", Value: "authenticated"})

		_, err := transport.ReadKey(r)
		assert.ErrorIs(t, err, sessiontransport.ErrNoSessionCookie)
	})
}

func TestRemove(t *testing.T) {
	transport := newTransport(t)

	w := httptest.NewRecorder()
	transport.Remove(w)

	cookies := cookiesByName(w)
	require.Len(t, cookies, 2, "remove must clear both cookies in one response")

	for _, name := range []string{"session", "session_pub"} {
		c, ok := cookies[name]
		require.True(t, ok, "missing cleared cookie %s", name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestNewCookieFromConfig(t *testing.T) {
	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	transport := sessiontransport.NewCookieFromConfig(sessiontransport.Config{
		CookieName:       "sid",
		PublicCookieName: "sid_pub",
		TTL:              time.Hour,
	}, mgr)

	sess, err := session.New(3)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, transport.Attach(w, sess))

	cookies := cookiesByName(w)
	require.Contains(t, cookies, "sid")
	require.Contains(t, cookies, "sid_pub")
	assert.Equal(t, int(time.Hour.Seconds()), cookies["sid"].MaxAge)
}
