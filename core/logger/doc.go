// Package logger provides structured logging attribute helpers built on Go's
// standard slog package, with nil-safe attribute creation for common patterns.
//
// # Usage
//
//	import "github.com/dmitrymomot/eventbus/core/logger"
//
//	log.Info("retention sweep complete",
//		logger.Component("audit-topic"),
//		logger.Duration(elapsed),
//	)
//
//	// Nil errors produce an empty attribute, so no guard is needed:
//	log.Error("enqueue rejected", logger.Error(err))
//
// All helpers return an empty slog.Attr for nil or empty input, which slog
// silently drops from the output.
package logger
