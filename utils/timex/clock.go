// File: clock.go
// Title: Clock Abstraction
// Description: The current-instant provider read by the now functions, with
//              the system clock as default and helpers for pinned clocks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation replacing direct time.Now calls

package timex

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// NowUTC returns the current UTC wall clock. The optional clock replaces the
// system clock.
func NowUTC(clock ...Clock) LocalDateTime {
	return civil.DateTimeOf(currentTime(clock).UTC())
}

// NowUTCMillis returns the current instant in milliseconds since the Unix
// epoch. The optional clock replaces the system clock.
func NowUTCMillis(clock ...Clock) int64 {
	return currentTime(clock).UnixMilli()
}

func currentTime(clock []Clock) time.Time {
	if len(clock) > 0 && clock[0] != nil {
		return clock[0].Now()
	}
	return SystemClock{}.Now()
}
