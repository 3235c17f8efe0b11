package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notevault/core/session"
	"github.com/dmitrymomot/notevault/integration/database/pg"
)

// Sessions implements session.Store over PostgreSQL. Rows live until
// logout deletes them; there is no server-side expiry.
type Sessions struct {
	base
}

// NewSessions creates the session repository.
func NewSessions(pool *pgxpool.Pool, timeout time.Duration) *Sessions {
	return &Sessions{base: newBase(pool, timeout)}
}

func (r *Sessions) Save(ctx context.Context, sess session.Session) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id) VALUES ($1, $2)`, sess.Key, sess.UserID,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *Sessions) FindByKey(ctx context.Context, key string) (session.Session, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var sess session.Session
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id FROM sessions WHERE id = $1`, key,
	).Scan(&sess.Key, &sess.UserID)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("find session: %w", err)
	}
	return sess, nil
}

func (r *Sessions) Delete(ctx context.Context, key string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, key)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
