package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/notevault/core/response"
	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
)

// userContextKey is an unexported key type to avoid context collisions.
type userContextKey struct{}

// Guard is the per-request identity resolver: it reconstructs a Session from
// the inbound cookie, re-validates it against the session store and loads
// the owning User. Every protected route sits behind its middleware.
type Guard struct {
	users     UserStore
	sessions  session.Store
	transport *sessiontransport.Cookie
}

// NewGuard creates an identity resolver.
func NewGuard(users UserStore, sessions session.Store, transport *sessiontransport.Cookie) *Guard {
	return &Guard{
		users:     users,
		sessions:  sessions,
		transport: transport,
	}
}

// ResolveSession validates the request's cookie against the session store.
// Missing cookie and missing row are the same ErrNotAuthenticated outcome;
// store faults propagate unchanged so callers can tell 401 from 500.
func (g *Guard) ResolveSession(ctx context.Context, r *http.Request) (session.Session, error) {
	key, err := g.transport.ReadKey(r)
	if err != nil {
		return session.Session{}, ErrNotAuthenticated
	}

	sess, err := g.sessions.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return session.Session{}, ErrNotAuthenticated
		}
		return session.Session{}, fmt.Errorf("find session: %w", err)
	}
	return sess, nil
}

// ResolveUser performs the full two-hop resolution: cookie -> session row ->
// user row. An orphaned session (the referenced user was deleted) resolves
// as ErrNotAuthenticated, not as an infrastructure fault.
func (g *Guard) ResolveUser(ctx context.Context, r *http.Request) (User, error) {
	sess, err := g.ResolveSession(ctx, r)
	if err != nil {
		return User{}, err
	}

	user, err := g.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrNotAuthenticated
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// RequireUser is middleware that resolves the requesting user and injects it
// into the request context. Unauthenticated requests get 401; store faults
// get 500.
func (g *Guard) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.ResolveUser(r.Context(), r)
		if err != nil {
			if errors.Is(err, ErrNotAuthenticated) {
				response.Error(w, response.ErrUnauthorized)
				return
			}
			response.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser returns a context carrying the resolved user.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// CurrentUser extracts the user injected by RequireUser. The boolean is
// false on routes that did not pass through the guard.
func CurrentUser(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userContextKey{}).(User)
	return user, ok
}
