// Package logger provides slog-backed logging with Printf-style wrappers.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logger settings carried in the application config file.
type Config struct {
	// LogLevel is the minimum level to log: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output log file. Empty or "-" means stderr.
	LogFilePath string `toml:"log_file"`
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// Level parses LogLevel, defaulting to info on unknown strings.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
