// Package logger provides structured logging built on the standard slog
// package: a factory with environment presets and a set of attribute helpers
// for common fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/notevault/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("notevault"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("notevault"))
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Attribute helpers use the empty-Attr pattern for nil safety, so
// log.Error("...", logger.Error(err)) is valid even when err is nil.
package logger
