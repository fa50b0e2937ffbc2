package sdftext

import (
	"log/slog"

	"github.com/gogpu/sdftext/internal/logging"
)

// SetLogger configures the logger for sdftext and all its sub-packages.
// By default, sdftext produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by sdftext:
//   - [slog.LevelDebug]: atlas build statistics (tile size, textures, glyphs)
//   - [slog.LevelInfo]: atlas cache misses
//   - [slog.LevelWarn]: skipped glyphs (outline decode failures, glyphs missing from the atlas)
//   - [slog.LevelError]: default shader compile failures
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	sdftext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by sdftext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
