// Package cli implements the featgate command-line interface.
//
// This package provides commands for reporting a project's feature state,
// building the gated dependency graph, and validating manifest
// configuration. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - features: Report each declared feature with its enabled/disabled state
//   - graph: Build the gated dependency graph and export it
//   - check: Validate the manifest's feature and dependency configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and non-fatal configuration warnings are
// bridged from the features reporter onto the logger at warn level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/featgate/featgate/pkg/features"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// warnReporter bridges non-fatal feature findings onto the logger.
func warnReporter(l *log.Logger) features.Reporter {
	return features.ReporterFunc(func(w features.Warning) {
		l.Warn(w.String())
	})
}
