package image

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Image is the metadata row for one stored object.
type Image struct {
	ID          int64
	UserID      int64
	ObjectKey   string
	ContentType string
	CreatedAt   time.Time
}

// Store persists image metadata. Operations are scoped by the owning
// user id.
type Store interface {
	// Create inserts a metadata row and returns it with its id.
	Create(ctx context.Context, userID int64, objectKey, contentType string) (Image, error)

	// Find returns the image owned by userID, or ErrNotFound.
	Find(ctx context.Context, userID, imageID int64) (Image, error)

	// Delete removes the metadata row and reports whether one existed.
	Delete(ctx context.Context, userID, imageID int64) (bool, error)
}

// ObjectStorage is the object store slice the handler needs. Satisfied
// by integration/storage/s3.
type ObjectStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ObjectKey builds the bucket key for a new upload: a per-user prefix
// plus a random name, keeping the original extension when the content
// type has a canonical one.
func ObjectKey(userID int64, contentType, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return fmt.Sprintf("users/%d/%s%s", userID, uuid.NewString(), ext)
}
