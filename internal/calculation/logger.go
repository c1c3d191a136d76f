package calculation

import (
	"fmt"
	"io"
	"log"
)

// Logger is a minimal logging interface for the projection engine and its runners.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. Debug lines are dropped
// unless Debug is set.
type WriterLogger struct {
	Debug bool
	l     *log.Logger
}

// NewWriterLogger creates a WriterLogger with a "wealthpath" prefix.
func NewWriterLogger(w io.Writer, debug bool) *WriterLogger {
	return &WriterLogger{Debug: debug, l: log.New(w, "wealthpath ", log.LstdFlags)}
}

func (wl *WriterLogger) Debugf(format string, args ...any) {
	if wl.Debug {
		wl.emit("DEBUG", format, args...)
	}
}
func (wl *WriterLogger) Infof(format string, args ...any)  { wl.emit("INFO", format, args...) }
func (wl *WriterLogger) Warnf(format string, args ...any)  { wl.emit("WARN", format, args...) }
func (wl *WriterLogger) Errorf(format string, args ...any) { wl.emit("ERROR", format, args...) }

func (wl *WriterLogger) emit(level, format string, args ...any) {
	wl.l.Printf("%-5s %s", level, fmt.Sprintf(format, args...))
}

// orNop returns l, or a NopLogger when l is nil.
func orNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
