package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notevault/integration/database/pg"
	"github.com/dmitrymomot/notevault/note"
)

// Notes implements note.Store over PostgreSQL. Every statement filters
// by user_id so ownership never depends on caller-side checks.
type Notes struct {
	base
}

// NewNotes creates the note repository.
func NewNotes(pool *pgxpool.Pool, timeout time.Duration) *Notes {
	return &Notes{base: newBase(pool, timeout)}
}

func (r *Notes) Create(ctx context.Context, userID int64, in note.CreateInput) (note.Note, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	n := note.Note{
		UpdateTime: note.Now(),
		Favourite:  in.Favourite,
		Title:      in.Title,
		Content:    in.Content,
		IsDiary:    in.IsDiary,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, favourite, is_diary, update_time)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		userID, n.Title, n.Content, n.Favourite, n.IsDiary, n.UpdateTime,
	).Scan(&n.ID)
	if err != nil {
		return note.Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (r *Notes) Find(ctx context.Context, userID, noteID int64) (note.Note, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n note.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, favourite, is_diary, update_time
		 FROM notes WHERE user_id = $1 AND id = $2`,
		userID, noteID,
	).Scan(&n.ID, &n.Title, &n.Content, &n.Favourite, &n.IsDiary, &n.UpdateTime)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return note.Note{}, note.ErrNotFound
		}
		return note.Note{}, fmt.Errorf("find note: %w", err)
	}
	return n, nil
}

func (r *Notes) List(ctx context.Context, userID int64, page note.Page) ([]note.Note, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Overfetch by one row to learn whether another page exists without
	// a second count query.
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, favourite, is_diary, update_time
		 FROM notes WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		userID, page.Size+1, page.Offset(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("list notes: %w", err)
	}

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (note.Note, error) {
		var n note.Note
		err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Favourite, &n.IsDiary, &n.UpdateTime)
		return n, err
	})
	if err != nil {
		return nil, false, fmt.Errorf("scan notes: %w", err)
	}

	more := len(notes) > page.Size
	if more {
		notes = notes[:page.Size]
	}
	return notes, more, nil
}

func (r *Notes) Update(ctx context.Context, userID, noteID int64, in note.UpdateInput) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	updateTime := note.Now()
	tag, err := r.pool.Exec(ctx,
		`UPDATE notes SET
		   title = COALESCE($1, title),
		   content = COALESCE($2, content),
		   favourite = COALESCE($3, favourite),
		   update_time = $4
		 WHERE user_id = $5 AND id = $6`,
		in.Title, in.Content, in.Favourite, updateTime, userID, noteID,
	)
	if err != nil {
		return 0, fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, note.ErrNotFound
	}
	return updateTime, nil
}

func (r *Notes) SetFavourite(ctx context.Context, userID, noteID int64, favourite bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE notes SET favourite = $1, update_time = $2 WHERE user_id = $3 AND id = $4`,
		favourite, note.Now(), userID, noteID,
	)
	if err != nil {
		return fmt.Errorf("set favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func (r *Notes) Delete(ctx context.Context, userID, noteID int64) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE user_id = $1 AND id = $2`, userID, noteID,
	)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
