package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notevault/image"
	"github.com/dmitrymomot/notevault/integration/database/pg"
)

// Images implements image.Store over PostgreSQL.
type Images struct {
	base
}

// NewImages creates the image metadata repository.
func NewImages(pool *pgxpool.Pool, timeout time.Duration) *Images {
	return &Images{base: newBase(pool, timeout)}
}

func (r *Images) Create(ctx context.Context, userID int64, objectKey, contentType string) (image.Image, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	img := image.Image{
		UserID:      userID,
		ObjectKey:   objectKey,
		ContentType: contentType,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO images (user_id, object_key, content_type)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		userID, objectKey, contentType,
	).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return image.Image{}, fmt.Errorf("create image: %w", err)
	}
	return img, nil
}

func (r *Images) Find(ctx context.Context, userID, imageID int64) (image.Image, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var img image.Image
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, object_key, content_type, created_at
		 FROM images WHERE user_id = $1 AND id = $2`,
		userID, imageID,
	).Scan(&img.ID, &img.UserID, &img.ObjectKey, &img.ContentType, &img.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return image.Image{}, image.ErrNotFound
		}
		return image.Image{}, fmt.Errorf("find image: %w", err)
	}
	return img, nil
}

func (r *Images) Delete(ctx context.Context, userID, imageID int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM images WHERE user_id = $1 AND id = $2`, userID, imageID,
	)
	if err != nil {
		return false, fmt.Errorf("delete image: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
