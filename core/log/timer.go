// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on
//              completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Duration carried on the entry instead of as fields;
//                       completion always logged at debug level

package log

import (
	"time"
)

// Timer measures one operation. Create it with Logger.StartTimer.
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop stops the timer and logs the elapsed time. Later calls return 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := time.Since(t.startTime)
	t.stopped = true

	t.logger.log(LevelDebug, t.operation+" completed", nil, elapsed, t.fields, Field("operation", t.operation))
	return elapsed
}
