package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv ensures the optional .env file is read into the process
// environment exactly once, before any struct is parsed. A missing file is
// not an error.
var loadDotEnv = sync.OnceFunc(func() {
	_ = godotenv.Load()
})

// Load parses environment variables into the given struct pointer.
// Fields are mapped via `env:"..."` tags with `envDefault:"..."` fallbacks.
func Load(cfg any) error {
	loadDotEnv()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}

// MustLoad is Load that panics on failure. Intended for application startup
// where a missing required variable should stop the process immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
