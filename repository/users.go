package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/integration/database/pg"
)

// Users implements auth.UserStore over PostgreSQL.
type Users struct {
	base
}

// NewUsers creates the user repository. A non-positive timeout falls
// back to the package default.
func NewUsers(pool *pgxpool.Pool, timeout time.Duration) *Users {
	return &Users{base: newBase(pool, timeout)}
}

func (r *Users) FindByID(ctx context.Context, id int64) (auth.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u auth.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *Users) FindByEmail(ctx context.Context, email string) (auth.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u auth.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *Users) EmailTaken(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

func (r *Users) Create(ctx context.Context, email, passwordHash string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2)`, email, passwordHash,
	)
	if err != nil {
		// The unique constraint closes the gap between the pre-insert
		// email check and the insert itself.
		if pg.IsDuplicateKeyError(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
