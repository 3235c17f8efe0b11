package note_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
	"github.com/dmitrymomot/notevault/note"
)

// memStore is an in-memory note.Store. Setting failWith makes every
// method return that error.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	notes    map[int64]ownedNote
	failWith error
}

type ownedNote struct {
	userID int64
	note   note.Note
}

func newMemStore() *memStore {
	return &memStore{notes: make(map[int64]ownedNote)}
}

func (s *memStore) Create(_ context.Context, userID int64, in note.CreateInput) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return note.Note{}, s.failWith
	}
	s.nextID++
	n := note.Note{
		ID:         s.nextID,
		UpdateTime: note.Now(),
		Favourite:  in.Favourite,
		Title:      in.Title,
		Content:    in.Content,
		IsDiary:    in.IsDiary,
	}
	s.notes[n.ID] = ownedNote{userID: userID, note: n}
	return n, nil
}

func (s *memStore) Find(_ context.Context, userID, noteID int64) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return note.Note{}, s.failWith
	}
	owned, ok := s.notes[noteID]
	if !ok || owned.userID != userID {
		return note.Note{}, note.ErrNotFound
	}
	return owned.note, nil
}

func (s *memStore) List(_ context.Context, userID int64, page note.Page) ([]note.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, false, s.failWith
	}

	var all []note.Note
	for id := int64(1); id <= s.nextID; id++ {
		if owned, ok := s.notes[id]; ok && owned.userID == userID {
			all = append(all, owned.note)
		}
	}

	offset := page.Offset()
	if offset >= len(all) {
		return nil, false, nil
	}
	rest := all[offset:]
	if len(rest) > page.Size {
		return rest[:page.Size], true, nil
	}
	return rest, false, nil
}

func (s *memStore) Update(_ context.Context, userID, noteID int64, in note.UpdateInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	owned, ok := s.notes[noteID]
	if !ok || owned.userID != userID {
		return 0, note.ErrNotFound
	}
	if in.Title != nil {
		owned.note.Title = *in.Title
	}
	if in.Content != nil {
		owned.note.Content = *in.Content
	}
	if in.Favourite != nil {
		owned.note.Favourite = *in.Favourite
	}
	owned.note.UpdateTime = note.Now()
	s.notes[noteID] = owned
	return owned.note.UpdateTime, nil
}

func (s *memStore) SetFavourite(_ context.Context, userID, noteID int64, favourite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	owned, ok := s.notes[noteID]
	if !ok || owned.userID != userID {
		return note.ErrNotFound
	}
	owned.note.Favourite = favourite
	owned.note.UpdateTime = note.Now()
	s.notes[noteID] = owned
	return nil
}

func (s *memStore) Delete(_ context.Context, userID, noteID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return false, s.failWith
	}
	owned, ok := s.notes[noteID]
	if !ok || owned.userID != userID {
		return false, nil
	}
	delete(s.notes, noteID)
	return true, nil
}

// memUsers and memSessions are just enough of the auth stores to build
// a working guard for the handler tests.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]auth.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[int64]auth.User)}
}

func (s *memUsers) add(email string) auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u := auth.User{ID: s.nextID, Email: email}
	s.byID[u.ID] = u
	return u
}

func (s *memUsers) FindByID(_ context.Context, id int64) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (s *memUsers) EmailTaken(_ context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func (s *memUsers) Create(_ context.Context, email, _ string) error {
	s.add(email)
	return nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]session.Session)}
}

func (s *memSessions) Save(_ context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Key] = sess
	return nil
}

func (s *memSessions) FindByKey(_ context.Context, key string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (s *memSessions) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[key]
	delete(s.sessions, key)
	return ok, nil
}

// fixture mounts the note handler on a chi router behind a real guard.
type fixture struct {
	store     *memStore
	users     *memUsers
	sessions  *memSessions
	transport *sessiontransport.Cookie
	srv       http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mgr, err := cookie.New([]string{"note-package-test-secret-32chars"})
	require.NoError(t, err)

	store := newMemStore()
	users := newMemUsers()
	sessions := newMemSessions()
	transport := sessiontransport.NewCookie(mgr)
	guard := auth.NewGuard(users, sessions, transport)

	r := chi.NewRouter()
	note.NewHandler(store, guard, nil).Mount(r)

	return &fixture{
		store:     store,
		users:     users,
		sessions:  sessions,
		transport: transport,
		srv:       r,
	}
}

// loginAs registers a user and returns a request factory that attaches
// that user's session cookies.
func (f *fixture) loginAs(t *testing.T, email string) func(r *http.Request) *http.Request {
	t.Helper()

	user := f.users.add(email)
	sess, err := session.New(user.ID)
	require.NoError(t, err)
	require.NoError(t, f.sessions.Save(context.Background(), sess))

	w := httptest.NewRecorder()
	require.NoError(t, f.transport.Attach(w, sess))

	cookies := w.Result().Cookies()
	return func(r *http.Request) *http.Request {
		for _, c := range cookies {
			r.AddCookie(c)
		}
		return r
	}
}
