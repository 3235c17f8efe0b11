package note

import (
	"context"
	"time"
)

// MaxPageSize caps how many notes a single list call may return.
const MaxPageSize = 100

// DefaultPageSize is used when the client does not ask for a size.
const DefaultPageSize = 20

// Note is a single note as stored and served. UpdateTime is unix
// milliseconds, maintained server-side on every write.
type Note struct {
	ID         int64  `json:"id"`
	UpdateTime int64  `json:"update_time"`
	Favourite  bool   `json:"favourite"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	IsDiary    bool   `json:"is_diary"`
}

// CreateInput carries the fields a client may set when creating a note.
// Content is the only required field.
type CreateInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Favourite bool   `json:"favourite"`
	IsDiary   bool   `json:"is_diary"`
}

// UpdateInput is a partial update: nil fields keep their current value.
type UpdateInput struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Favourite *bool   `json:"favourite"`
}

// Page is a validated pagination window.
type Page struct {
	Number int
	Size   int
}

// NewPage validates the page number and size. Size zero picks the
// default; anything outside (0, MaxPageSize] or a negative page number
// is ErrInvalidPage.
func NewPage(number, size int) (Page, error) {
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 0 || size < 0 || size > MaxPageSize {
		return Page{}, ErrInvalidPage
	}
	return Page{Number: number, Size: size}, nil
}

// Offset is the number of rows to skip for this window.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Store persists notes. Implementations must scope every operation by
// userID so ownership is enforced at the query level.
type Store interface {
	// Create inserts a new note and returns it with its assigned id
	// and update time.
	Create(ctx context.Context, userID int64, in CreateInput) (Note, error)

	// Find returns the note with the given id owned by userID, or
	// ErrNotFound.
	Find(ctx context.Context, userID, noteID int64) (Note, error)

	// List returns one page of the user's notes ordered by id, and
	// whether more pages remain after it.
	List(ctx context.Context, userID int64, page Page) ([]Note, bool, error)

	// Update applies the non-nil fields of in and returns the new
	// update time, or ErrNotFound when no such note is owned by userID.
	Update(ctx context.Context, userID, noteID int64, in UpdateInput) (int64, error)

	// SetFavourite flips the favourite flag, or returns ErrNotFound.
	SetFavourite(ctx context.Context, userID, noteID int64, favourite bool) error

	// Delete removes the note and reports whether a row was deleted.
	Delete(ctx context.Context, userID, noteID int64) (bool, error)
}

// Now returns the current timestamp in the resolution notes record.
func Now() int64 {
	return time.Now().UnixMilli()
}
