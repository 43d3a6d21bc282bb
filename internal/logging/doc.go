// Package logging provides structured logging for the main view editor.
//
// This package wraps zap logger with convenience functions for the events
// worth recording: menu navigation, configuration changes, screen lifecycle
// operations and preview clients.
//
// # Log Levels
//
//   - Debug: menu events, dirty signals, WebSocket messages
//   - Info: screen added/removed/moved, preview clients connecting
//   - Warn: persisted factory names that are no longer registered
//   - Error: store flush failures, server errors
//
// # Specialized Logging
//
//	logging.LogScreenChange("add", 2, "Layout2x1")
//	logging.LogDirty("model", "widget selected")
//	logging.LogPreviewClient(remoteAddr, "connected")
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// MAINVIEWS_LOG_LEVEL:
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr, or to the file named by MAINVIEWS_LOG_FILE. The
// simulator needs the terminal, so run it with a log file when debugging.
package logging
