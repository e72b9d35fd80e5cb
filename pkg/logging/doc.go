// Package logging provides structured logging utilities for the patterns catalog.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that the CLI, the example runner and the singleton holder all emit the
// same JSON shape. It supports environment-based level configuration,
// module/version context injection and source tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Potentially problematic situations
//   - ERROR: Failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("patterns", "v1.0.0")
//	    slog.Info("running example", "name", "observer")
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("patterns", "v1.0.0", "debug")
//
// Converting to a standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug patterns run --all
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "singleton constructed",
//	    "module": "patterns",
//	    "version": "v1.0.0",
//	    "holder": "settings"
//	}
package logging
