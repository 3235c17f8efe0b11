package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultQueryTimeout bounds every single query so a stuck connection
// cannot hold a request forever.
const defaultQueryTimeout = 5 * time.Second

// base carries the pool and the shared query timeout.
type base struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func newBase(pool *pgxpool.Pool, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return base{pool: pool, timeout: timeout}
}

// withTimeout derives the per-query context.
func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}
