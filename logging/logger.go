package logging

import (
	"log/slog"
	"os"
)

// Logger defines the minimal logging capability consumed by the bridge.
// This allows users to provide their own logger implementation or use the
// built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// WarnErrorLogger discards debug/info and forwards warn/error to an
// underlying Logger. It is the default capability handed to the bridge so
// quiet operation still surfaces failures.
type WarnErrorLogger struct {
	Inner Logger
}

// Debug is discarded.
func (WarnErrorLogger) Debug(string, ...any) {}

// Info is discarded.
func (WarnErrorLogger) Info(string, ...any) {}

// Warn forwards to the inner logger.
func (l WarnErrorLogger) Warn(msg string, args ...any) { l.Inner.Warn(msg, args...) }

// Error forwards to the inner logger.
func (l WarnErrorLogger) Error(msg string, args ...any) { l.Inner.Error(msg, args...) }

// Default returns the default Logger: warn/error forwarded to a text slog
// handler on stderr, debug/info discarded.
func Default() Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return WarnErrorLogger{Inner: NewSlogAdapter(slog.New(handler))}
}
