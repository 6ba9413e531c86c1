// Package log provides structured logging for the temporal tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, logfmt and
//              styled console output, correlation IDs, operation timers and
//              severity-aware logging of core errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: lipgloss console output, synchronous writer
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatConsole,
//		Name:   "temporal",
//	}).WithCorrelationID(id)
//
//	logger.Info("converted", log.Int64("millis", ms))
//
//	if err != nil {
//		logger.LogError(err) // level follows the error severity
//	}
//
// Loggers are never modified after construction, so they can be shared
// freely. With* methods return copies.
package log
