package note

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/response"
)

// pagedResponse is the list envelope: one page of data plus whether
// more pages remain.
type pagedResponse struct {
	Data []Note `json:"data"`
	More bool   `json:"more"`
}

// Handler exposes the note CRUD endpoints. All routes require an
// authenticated user; the guard middleware is applied at mount time.
type Handler struct {
	store Store
	guard *auth.Guard
	log   *slog.Logger
}

// NewHandler creates the notes HTTP handler.
func NewHandler(store Store, guard *auth.Guard, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{store: store, guard: guard, log: log}
}

// Mount registers the note routes under /notes:
//
//	POST   /notes                create
//	GET    /notes?page&size      list
//	GET    /notes/{noteID}       fetch one
//	PATCH  /notes/{noteID}       partial update
//	DELETE /notes/{noteID}       delete
//	PUT    /notes/{noteID}/favourite  set the favourite flag
func (h *Handler) Mount(r chi.Router) {
	r.Route("/notes", func(r chi.Router) {
		r.Use(h.guard.RequireUser)
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Route("/{noteID}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Patch("/", h.update)
			r.Delete("/", h.delete)
			r.Put("/favourite", h.setFavourite)
		})
	})
}

// noteID pulls the {noteID} path parameter.
func noteID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.ErrNotFound
	}
	return id, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, response.ErrBadRequest.WithMessage("malformed JSON body"))
		return
	}
	if in.Content == "" {
		response.Error(w, response.ErrBadRequest.WithMessage(ErrEmptyContent.Error()))
		return
	}

	created, err := h.store.Create(r.Context(), user.ID, in)
	if err != nil {
		h.log.ErrorContext(r.Context(), "note create failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	_ = response.JSONWithStatus(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	id, err := noteID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	n, err := h.store.Find(r.Context(), user.ID, id)
	switch {
	case err == nil:
		_ = response.JSON(w, n)
	case errors.Is(err, ErrNotFound):
		response.Error(w, response.ErrNotFound)
	default:
		h.log.ErrorContext(r.Context(), "note fetch failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	page, err := pageFromQuery(r)
	if err != nil {
		response.Error(w, response.ErrBadRequest.WithMessage(ErrInvalidPage.Error()))
		return
	}

	notes, more, err := h.store.List(r.Context(), user.ID, page)
	if err != nil {
		h.log.ErrorContext(r.Context(), "note list failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}
	if notes == nil {
		notes = []Note{}
	}

	_ = response.JSON(w, pagedResponse{Data: notes, More: more})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	id, err := noteID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var in UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, response.ErrBadRequest.WithMessage("malformed JSON body"))
		return
	}

	updateTime, err := h.store.Update(r.Context(), user.ID, id, in)
	switch {
	case err == nil:
		_ = response.JSON(w, map[string]int64{"update_time": updateTime})
	case errors.Is(err, ErrNotFound):
		response.Error(w, response.ErrNotFound)
	default:
		h.log.ErrorContext(r.Context(), "note update failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	id, err := noteID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	deleted, err := h.store.Delete(r.Context(), user.ID, id)
	switch {
	case err != nil:
		h.log.ErrorContext(r.Context(), "note delete failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
	case !deleted:
		response.Error(w, response.ErrNotFound)
	default:
		_ = response.JSON(w, map[string]string{"status": "ok"})
	}
}

func (h *Handler) setFavourite(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	id, err := noteID(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var in struct {
		Favourite bool `json:"favourite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, response.ErrBadRequest.WithMessage("malformed JSON body"))
		return
	}

	err = h.store.SetFavourite(r.Context(), user.ID, id, in.Favourite)
	switch {
	case err == nil:
		_ = response.JSON(w, map[string]string{"status": "ok"})
	case errors.Is(err, ErrNotFound):
		response.Error(w, response.ErrNotFound)
	default:
		h.log.ErrorContext(r.Context(), "note favourite failed", logger.Component("note"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
	}
}

// pageFromQuery parses the page and size query parameters. Both are
// optional; absent values fall back to page 0 and the default size.
func pageFromQuery(r *http.Request) (Page, error) {
	q := r.URL.Query()

	var number, size int
	var err error
	if raw := q.Get("page"); raw != "" {
		if number, err = strconv.Atoi(raw); err != nil {
			return Page{}, ErrInvalidPage
		}
	}
	if raw := q.Get("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			return Page{}, ErrInvalidPage
		}
	}
	return NewPage(number, size)
}
