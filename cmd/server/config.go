package main

import (
	"time"

	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/server"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
	"github.com/dmitrymomot/notevault/integration/database/pg"
	"github.com/dmitrymomot/notevault/integration/storage/s3"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"notevault"`

	// Development switches the logger to human-readable text output.
	Development bool `env:"APP_DEV" envDefault:"false"`

	// QueryTimeout bounds every repository query.
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`

	// MaxUploadBytes caps multipart image upload bodies.
	MaxUploadBytes int64 `env:"IMAGE_MAX_UPLOAD_BYTES" envDefault:"10485760"` // 10MB

	DB      pg.Config
	Cookie  cookie.Config
	Session sessiontransport.Config
	Storage s3.Config
	Server  server.Config
}
