package btxt

import "context"
import "log/slog"
import "sync/atomic"

// Handler discarding all records. Enabled() returns false so
// disabled logging doesn't even format its arguments.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by btxt. By default, btxt produces no
// log output. Passing nil restores the silent default.
//
// Levels used:
//  - [slog.LevelDebug]: render cache allocation, glyphs skipped
//    because they are missing from the atlas, typewriter completion.
//  - [slog.LevelWarn]: offscreen targets that couldn't be created.
//    Drawing continues uncached.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the logger currently used by btxt.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
