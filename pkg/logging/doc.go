// Package logging provides structured logging utilities for kkdash components.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults and conventions for consistent logging across the daemon and
// CLI. It supports environment-based log level configuration,
// module/version context injection, and automatic source location
// tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
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
//	    logging.SetDefaultStructuredLogger("kkdashd", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("publishing snapshot", "path", outputPath)
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("kkdashd", "v2.0.0", "debug")
//	logger.Info("scheduler starting", "interval", interval)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("kkdashd", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug kkdashd run
//	LOG_LEVEL=error kkdashd collect
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
//	    "msg": "snapshot published",
//	    "module": "kkdashd",
//	    "version": "v1.0.0",
//	    "path": "/opt/kkdash/www/data.json"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "scheduler.(*Scheduler).cycle",
//	        "file": "scheduler.go",
//	        "line": 45
//	    },
//	    "msg": "cycle complete",
//	    "module": "kkdashd",
//	    "version": "v1.0.0"
//	}
//
// Logs go to stderr so the one-shot collect command can write its
// snapshot to stdout without interleaving.
package logging
