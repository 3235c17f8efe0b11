// Package pg provides PostgreSQL connection management with migrations and
// health checking.
//
// It wraps the pgx driver with connection pool configuration, exponential
// backoff on initial connect, and goose-based schema migrations:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
//
//	check := pg.Healthcheck(pool) // func(ctx) error, for readiness probes
//
// Error classification helpers (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError) give repositories type-safe checks for the
// common PostgreSQL failure patterns.
package pg
