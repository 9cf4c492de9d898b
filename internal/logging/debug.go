package logging

import (
	"io"
	"os"
	"sync/atomic"
)

var (
	forced atomic.Bool
	std    atomic.Pointer[Logger]
)

func init() {
	std.Store(NewLogger(os.Stderr, FormatText))
}

// DebugEnabled returns true if debug mode is enabled via TT_DEBUG environment variable
// or EnableDebug
func DebugEnabled() bool {
	return forced.Load() || os.Getenv("TT_DEBUG") != ""
}

// EnableDebug turns debug output on regardless of TT_DEBUG
func EnableDebug(enabled bool) {
	forced.Store(enabled)
}

// SetOutput replaces the destination and format of debug output
func SetOutput(out io.Writer, format Format) {
	std.Store(NewLogger(out, format))
}

// Default returns the logger used by the package-level helpers
func Default() *Logger {
	return std.Load()
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Default().Debugf(format, args...)
	}
}

// Debugln prints a debug message only if debug mode is enabled
func Debugln(msg string, fields ...Field) {
	if DebugEnabled() {
		Default().Debug(msg, fields...)
	}
}
