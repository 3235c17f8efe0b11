package image

import "errors"

var (
	// ErrNotFound means no image with that id is owned by the user.
	ErrNotFound = errors.New("image not found")

	// ErrNotAnImage means the uploaded file is not an image/* type.
	ErrNotAnImage = errors.New("uploaded file is not an image")

	// ErrMissingFile means the multipart form had no image field.
	ErrMissingFile = errors.New("image file is required")
)
