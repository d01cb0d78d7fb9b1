// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
)

// Init initializes the logger package.
func Init(level slog.Level, output io.Writer) {
	initOnce.Do(func() {
		if output == nil {
			output = io.Discard
		}
		logLevel = new(slog.LevelVar)
		logLevel.Set(level)

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					source := a.Value.Any().(*slog.Source)
					source.File = filepath.Base(source.File)
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		handler := slog.NewTextHandler(output, &opts)
		defaultLogger = slog.New(handler)
	})
}

// ensureInitialized installs a discard logger if Init was never called, so
// the wrappers are always safe to use.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel})
		defaultLogger = slog.New(handler)
	})
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	ensureInitialized()
	logLevel.Set(level)
}

// logAtLevel logs a record at the given level, capturing the caller of the
// Debugf/Infof/... wrapper as the source.
func logAtLevel(level slog.Level, format string, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the wrapper itself.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, format, args...)
	os.Exit(1)
}
