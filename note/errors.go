package note

import "errors"

var (
	// ErrNotFound means no note with that id is owned by the user.
	ErrNotFound = errors.New("note not found")

	// ErrInvalidPage means the page number or size is out of range.
	ErrInvalidPage = errors.New("invalid page parameters")

	// ErrEmptyContent means a create request carried no content.
	ErrEmptyContent = errors.New("note content is required")
)
