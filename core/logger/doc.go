// Package logger provides structured logging utilities built on Go's
// standard slog package.
//
// It offers a small factory with environment presets and a set of pre-built
// attribute helpers for common logging scenarios in the SDK.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("clubkit"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("signed in",
//		logger.Component("session"),
//		logger.UserID(42),
//	)
//
// # Environment Presets
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("clubkit"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("clubkit"))
//
// Attribute helpers follow the empty-Attr pattern for nil safety, so calls
// like log.Error("failed", logger.Error(err)) need no explicit nil checks.
package logger
