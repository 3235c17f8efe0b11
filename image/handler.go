package image

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/response"
	"github.com/dmitrymomot/notevault/integration/storage/s3"
)

// DefaultMaxUploadBytes caps the multipart request body.
const DefaultMaxUploadBytes = 10 << 20 // 10 MiB

// Handler exposes the image endpoints. Uploads stream into object
// storage; metadata rows make delete and ownership checks cheap.
type Handler struct {
	store    Store
	objects  ObjectStorage
	guard    *auth.Guard
	log      *slog.Logger
	maxBytes int64
}

// Option configures the handler.
type Option func(*Handler)

// WithMaxUploadBytes overrides the request body cap.
func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// NewHandler creates the image HTTP handler.
func NewHandler(store Store, objects ObjectStorage, guard *auth.Guard, log *slog.Logger, opts ...Option) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		store:    store,
		objects:  objects,
		guard:    guard,
		log:      log,
		maxBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount registers the image routes under /images:
//
//	POST   /images            multipart upload
//	DELETE /images/{imageID}  delete
func (h *Handler) Mount(r chi.Router) {
	r.Route("/images", func(r chi.Router) {
		r.Use(h.guard.RequireUser)
		r.Post("/", h.upload)
		r.Delete("/{imageID}", h.delete)
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, response.ErrRequestEntityTooLarge)
			return
		}
		response.Error(w, response.ErrBadRequest.WithMessage("malformed multipart body"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, response.ErrBadRequest.WithMessage(ErrMissingFile.Error()))
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Error(w, response.ErrBadRequest.WithMessage(ErrNotAnImage.Error()))
		return
	}

	key := ObjectKey(user.ID, contentType, header.Filename)
	if err := h.objects.Save(r.Context(), key, file, contentType); err != nil {
		h.log.ErrorContext(r.Context(), "image upload failed", logger.Component("image"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	img, err := h.store.Create(r.Context(), user.ID, key, contentType)
	if err != nil {
		// The object is already in the bucket; best effort cleanup so a
		// failed metadata insert does not leak storage.
		if delErr := h.objects.Delete(r.Context(), key); delErr != nil {
			h.log.ErrorContext(r.Context(), "orphaned object cleanup failed", logger.Component("image"), logger.Error(delErr))
		}
		h.log.ErrorContext(r.Context(), "image metadata insert failed", logger.Component("image"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	_ = response.JSONWithStatus(w, http.StatusCreated, map[string]any{
		"id":  img.ID,
		"url": h.objects.URL(img.ObjectKey),
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "imageID"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, response.ErrNotFound)
		return
	}

	img, err := h.store.Find(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		h.log.ErrorContext(r.Context(), "image lookup failed", logger.Component("image"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	// A missing object means storage and metadata already diverged;
	// removing the row is still the right outcome.
	if err := h.objects.Delete(r.Context(), img.ObjectKey); err != nil && !errors.Is(err, s3.ErrObjectNotFound) {
		h.log.ErrorContext(r.Context(), "object delete failed", logger.Component("image"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	if _, err := h.store.Delete(r.Context(), user.ID, id); err != nil {
		h.log.ErrorContext(r.Context(), "image metadata delete failed", logger.Component("image"), logger.UserID(user.ID), logger.Error(err))
		response.Error(w, err)
		return
	}

	_ = response.JSON(w, map[string]string{"status": "ok"})
}
