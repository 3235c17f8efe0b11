// Package config provides type-safe environment variable loading backed by
// the caarlos0/env parser. A .env file in the working directory is loaded
// once, before the first parse, so local development and production share the
// same code path.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/notevault/core/config"
//
//	type DatabaseConfig struct {
//		ConnectionString string `env:"DATABASE_URL,required"`
//		MaxOpenConns     int    `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	func main() {
//		var db DatabaseConfig
//
//		// Load with error handling
//		if err := config.Load(&db); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&db)
//	}
package config
