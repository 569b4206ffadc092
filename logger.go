package andie

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so attributes
// passed to Debug in Apply are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// pkgLogger is read by every editor without a WithLogger option.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(silent)
}

// SetLogger configures the logger used by editors that were not given
// one with [WithLogger]. By default andie produces no log output.
// Pass nil to restore the silent default.
//
// Log levels used by andie:
//   - [slog.LevelDebug]: apply, undo, redo, open and save
//   - [slog.LevelInfo]: notices such as an empty undo stack
//   - [slog.LevelWarn]: history sidecars that exist but cannot be replayed
//
// Example:
//
//	andie.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	pkgLogger.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
