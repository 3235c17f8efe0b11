package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/password"
	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
)

// Service orchestrates authentication state transitions. It is the only
// writer of session rows; the Guard only reads them.
type Service struct {
	users     UserStore
	sessions  session.Store
	transport *sessiontransport.Cookie
	log       *slog.Logger
}

// NewService creates an authentication service.
func NewService(users UserStore, sessions session.Store, transport *sessiontransport.Cookie, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users:     users,
		sessions:  sessions,
		transport: transport,
		log:       log,
	}
}

// Signup registers a new credential and immediately logs the user in.
// Fails with ErrAlreadyAuthenticated when a valid session is attached,
// ErrEmailTaken when the email has an account, and a plain error on
// infrastructure faults. The email-taken check and the insert are two round
// trips; a race between them is caught by the unique constraint and surfaces
// as ErrEmailTaken as well.
func (s *Service) Signup(ctx context.Context, w http.ResponseWriter, r *http.Request, email, plaintext string) error {
	if err := s.requireAnonymous(ctx, r); err != nil {
		return err
	}

	taken, err := s.users.EmailTaken(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		// The plaintext must not leak through the error chain.
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(ctx, email, hash); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	// Second round trip to resolve the new id; signup is not hot-path.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("load created user: %w", err)
	}

	if err := s.startSession(ctx, w, user.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user signed up", logger.Component("auth"), logger.UserID(user.ID))
	return nil
}

// Login verifies credentials and starts a new session. An unknown email and
// a wrong password produce the identical ErrInvalidCredentials outcome so
// responses cannot be used for email enumeration.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, email, plaintext string) error {
	if err := s.requireAnonymous(ctx, r); err != nil {
		return err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("find user: %w", err)
	}

	// A corrupt stored hash denies access exactly like a wrong password.
	ok, err := password.Verify(user.PasswordHash, plaintext)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}

	if err := s.startSession(ctx, w, user.ID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "user logged in", logger.Component("auth"), logger.UserID(user.ID))
	return nil
}

// Logout deletes the current session row, then clears the cookie pair.
// When the row deletion fails the cookies are left in place so the client
// can retry; they are only cleared after the store confirms the delete.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	key, err := s.transport.ReadKey(r)
	if err != nil {
		return ErrNotAuthenticated
	}

	sess, err := s.sessions.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("find session: %w", err)
	}

	if _, err := s.sessions.Delete(ctx, sess.Key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.transport.Remove(w)

	s.log.InfoContext(ctx, "user logged out", logger.Component("auth"), logger.UserID(sess.UserID))
	return nil
}

// startSession mints a key, persists the session and attaches the cookie
// pair, strictly in that order. A crash after Save leaves an orphaned row,
// which is harmless; a crash after Attach cannot happen without Save having
// succeeded.
func (s *Service) startSession(ctx context.Context, w http.ResponseWriter, userID int64) error {
	sess, err := session.New(userID)
	if err != nil {
		return fmt.Errorf("mint session: %w", err)
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := s.transport.Attach(w, sess); err != nil {
		return fmt.Errorf("attach session cookies: %w", err)
	}
	return nil
}

// requireAnonymous fails with ErrAlreadyAuthenticated when the request
// carries a valid session. A cookie pointing at a deleted row counts as
// anonymous; only infrastructure faults propagate as errors.
func (s *Service) requireAnonymous(ctx context.Context, r *http.Request) error {
	key, err := s.transport.ReadKey(r)
	if err != nil {
		return nil
	}

	if _, err := s.sessions.FindByKey(ctx, key); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find session: %w", err)
	}
	return ErrAlreadyAuthenticated
}
