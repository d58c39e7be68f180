// Package logging provides structured logging utilities for fibercheck components.
//
// # Overview
//
// This package wraps the standard library slog package with fibercheck-specific
// defaults and conventions for consistent logging across the CLI and the API
// server. It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("fibercheck", version)
//
//	    // Use slog as normal
//	    slog.Info("running checks", "workspace", dir)
//	    slog.Error("check failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("fibercheckd", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug fibercheck validate -w ./workspace
//	LOG_LEVEL=error fibercheckd
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
//	    "msg": "validation completed",
//	    "module": "fibercheck",
//	    "version": "v1.0.0",
//	    "status": "pass"
//	}
//
// Logs go to stderr so report output on stdout stays machine-parseable.
package logging
