package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
)

const testSecret = "auth-package-test-secret-32ch!!!"

// memUserStore is an in-memory UserStore for tests. Setting failWith makes
// every method return that error, simulating an infrastructure fault.
type memUserStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[string]auth.User // keyed by email
	failWith error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]auth.User)}
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return auth.User{}, s.failWith
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return auth.User{}, s.failWith
	}
	u, ok := s.users[email]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) EmailTaken(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return false, s.failWith
	}
	_, ok := s.users[email]
	return ok, nil
}

func (s *memUserStore) Create(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.users[email]; ok {
		return auth.ErrEmailTaken
	}
	s.nextID++
	s.users[email] = auth.User{ID: s.nextID, Email: email, PasswordHash: passwordHash}
	return nil
}

// setHash overwrites a stored password hash, simulating column corruption.
func (s *memUserStore) setHash(email, hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[email]
	u.PasswordHash = hash
	s.users[email] = u
}

// memSessionStore is an in-memory session.Store. failFind and failDelete
// inject faults into the corresponding operations.
type memSessionStore struct {
	mu         sync.Mutex
	sessions   map[string]session.Session
	failSave   error
	failFind   error
	failDelete error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]session.Session)}
}

func (s *memSessionStore) Save(_ context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.sessions[sess.Key] = sess
	return nil
}

func (s *memSessionStore) FindByKey(_ context.Context, key string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFind != nil {
		return session.Session{}, s.failFind
	}
	sess, ok := s.sessions[key]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (s *memSessionStore) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failDelete != nil {
		return false, s.failDelete
	}
	_, ok := s.sessions[key]
	delete(s.sessions, key)
	return ok, nil
}

func (s *memSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// fixture bundles the auth components over in-memory stores.
type fixture struct {
	users     *memUserStore
	sessions  *memSessionStore
	transport *sessiontransport.Cookie
	svc       *auth.Service
	guard     *auth.Guard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	users := newMemUserStore()
	sessions := newMemSessionStore()
	transport := sessiontransport.NewCookie(mgr)

	return &fixture{
		users:     users,
		sessions:  sessions,
		transport: transport,
		svc:       auth.NewService(users, sessions, transport, nil),
		guard:     auth.NewGuard(users, sessions, transport),
	}
}

// requestWith returns a request carrying the cookies set on w.
func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 && c.Value != "" {
			r.AddCookie(c)
		}
	}
	return r
}
