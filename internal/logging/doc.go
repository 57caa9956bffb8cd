// Package logging provides structured logging for pktfmt.
//
// This package wraps zap with convenience functions for the few logging
// patterns the tool needs. Because the rendered diagram goes to stdout,
// logging is silent by default and all output goes to stderr; set the
// PKTFMT_LOG_LEVEL environment variable to enable it:
//
//	PKTFMT_LOG_LEVEL=debug pktfmt tcp
//
// # Log Levels
//
//   - Debug: render passes, parse failures, websocket message traffic
//   - Info: serve-mode lifecycle and HTTP requests
//   - Warn: non-fatal issues
//   - Error: failures surfaced to the user
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Serving diagrams",
//	    zap.String("addr", "127.0.0.1:8347"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
