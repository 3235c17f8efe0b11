package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFailedToOpenDBConnection indicates the pool could not be established.
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	// ErrEmptyConnectionString indicates no connection string was configured.
	ErrEmptyConnectionString = errors.New("empty postgres connection string, use DATABASE_URL env var")
	// ErrFailedToParseDBConfig indicates the connection string was rejected by pgx.
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")
	// ErrHealthcheckFailed indicates the connection is not available.
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")
	// ErrFailedToApplyMigrations indicates goose could not bring the schema up to date.
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")
	// ErrMigrationsDirNotFound indicates the configured migrations path does not exist.
	ErrMigrationsDirNotFound = errors.New("migrations directory not found")
)

// pgErrCode extracts the PostgreSQL error code, if any.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsNotFoundError reports whether err means "no rows matched".
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgErrCode(err) == "23505"
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation.
func IsForeignKeyViolationError(err error) bool {
	return pgErrCode(err) == "23503"
}
