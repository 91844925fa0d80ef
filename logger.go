package drawgl

import (
	"log/slog"
	"sync/atomic"
)

// silent is the default logger. slog.DiscardHandler reports every level as
// disabled, so log calls on the hot path return before formatting.
var silent = slog.New(slog.DiscardHandler)

// current holds the logger shared by drawgl and its backends.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger configures the logger for drawgl and the backends it creates.
// drawgl is silent until SetLogger is called; pass nil to silence it again.
// Backends already created keep the logger they were given.
//
// Log levels used by drawgl:
//   - [slog.LevelDebug]: one record per draw or pick call (mode, element
//     count, normal and color granularity, alpha)
//   - [slog.LevelInfo]: lifecycle events (shader compiled, texture created)
//   - [slog.LevelWarn]: incomplete primitives dropped by a backend
//
// SetLogger is safe for concurrent use.
//
// Example:
//
//	drawgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger.
// Backend packages read it when they are constructed directly.
func Logger() *slog.Logger {
	return current.Load()
}

// loggerSetter is implemented by backends that keep their own logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger hands b the current logger tagged with the backend name,
// if b accepts a logger.
func propagateLogger(name string, b Backend) {
	ls, ok := b.(loggerSetter)
	if !ok {
		return
	}
	l := Logger()
	if l != silent {
		l = l.With("backend", name)
	}
	ls.SetLogger(l)
}
