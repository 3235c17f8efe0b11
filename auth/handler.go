package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/response"
)

// Handler exposes the authentication endpoints. Login, logout and signup
// consume form-encoded bodies; responses are the shared JSON envelope.
type Handler struct {
	svc   *Service
	guard *Guard
	log   *slog.Logger
}

// NewHandler creates the authentication HTTP handler.
func NewHandler(svc *Service, guard *Guard, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, guard: guard, log: log}
}

// Mount registers the authentication routes:
//
//	POST /user          signup
//	POST /auth/login    login
//	POST /auth/logout   logout
//	GET  /auth/check    session probe
func (h *Handler) Mount(r chi.Router) {
	r.Post("/user", h.signup)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/check", h.check)
	})
}

// credentials pulls the email/password pair out of a form-encoded body.
func credentials(r *http.Request) (email, pass string, err error) {
	if err := r.ParseForm(); err != nil {
		return "", "", response.ErrBadRequest.WithMessage("malformed form body")
	}

	email = r.PostFormValue("email")
	pass = r.PostFormValue("password")
	if email == "" || pass == "" {
		return "", "", response.ErrBadRequest.WithMessage("email and password are required")
	}
	return email, pass, nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	email, pass, err := credentials(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	switch err := h.svc.Signup(r.Context(), w, r, email, pass); {
	case err == nil:
		_ = response.JSONWithStatus(w, http.StatusCreated, map[string]string{"status": "created"})
	case errors.Is(err, ErrAlreadyAuthenticated):
		response.Error(w, response.ErrBadRequest.WithMessage("already authenticated"))
	case errors.Is(err, ErrEmailTaken):
		response.Error(w, response.ErrConflict.WithMessage("email already registered"))
	default:
		h.log.ErrorContext(r.Context(), "signup failed", logger.Component("auth"), logger.Error(err))
		response.Error(w, err)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email, pass, err := credentials(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	switch err := h.svc.Login(r.Context(), w, r, email, pass); {
	case err == nil:
		_ = response.JSON(w, map[string]string{"status": "ok"})
	case errors.Is(err, ErrAlreadyAuthenticated):
		response.Error(w, response.ErrBadRequest.WithMessage("already authenticated"))
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(w, response.ErrUnauthorized.WithMessage("invalid email or password"))
	default:
		h.log.ErrorContext(r.Context(), "login failed", logger.Component("auth"), logger.Error(err))
		response.Error(w, err)
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	switch err := h.svc.Logout(r.Context(), w, r); {
	case err == nil:
		_ = response.JSON(w, map[string]string{"status": "ok"})
	case errors.Is(err, ErrNotAuthenticated):
		response.Error(w, response.ErrBadRequest.WithMessage("not authenticated"))
	default:
		h.log.ErrorContext(r.Context(), "logout failed", logger.Component("auth"), logger.Error(err))
		response.Error(w, err)
	}
}

// check is a pure read: 200 when an identity resolves, 401 otherwise.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	user, err := h.guard.ResolveUser(r.Context(), r)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			response.Error(w, response.ErrUnauthorized)
			return
		}
		h.log.ErrorContext(r.Context(), "session check failed", logger.Component("auth"), logger.Error(err))
		response.Error(w, err)
		return
	}

	_ = response.JSON(w, map[string]any{"status": "ok", "user_id": user.ID})
}
