// Package logging provides a minimal logging interface and adapters for the
// bridge.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) used for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - WarnErrorLogger, the default, which discards debug/info
//
// The logger is passed explicitly into bridge construction rather than
// replaced process-wide, avoiding hidden global coupling.
package logging
