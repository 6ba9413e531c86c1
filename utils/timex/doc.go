// Package timex normalizes and manipulates zone-less local date-times.
//
// Package: timex
// Title: Local Date-Time Utilities
// Description: Conversions from instants, epoch milliseconds and legacy
//              calendar values into local date-times, together with
//              aggregation, range checks, ISO rendering in UTC, and day and
//              month boundaries. Missing inputs are modelled as absent values
//              and propagate instead of failing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Reworked around civil date-times, absence and an
//                       injectable clock
//
// # Values
//
// LocalDateTime and Date are aliases of civil.DateTime and civil.Date from
// cloud.google.com/go/civil. Their zero values mean "absent". Instants are
// time.Time values; an optional instant is passed as *time.Time and nil
// means absent, so 0001-01-01T00:00:00Z stays an ordinary instant.
// Calendar stands in for mutable instant-plus-zone values handed over by
// older APIs; a nil *Calendar is absent.
//
// # Absence
//
// Functions that only transform input pass absence through:
//
//	timex.ToUTCFromMillis(0)   // absent
//	timex.FromCalendar(nil)    // absent
//	timex.ToUTC(nil)           // absent
//	timex.Max()                // MinDateTime, nil
//	timex.Min()                // MaxDateTime, nil
//
// Functions that need a concrete value return an error matching
// ErrInvalidArgument. Malformed values such as February 30 are never
// treated as absent; they are rejected the same way:
//
//	if _, err := timex.FormatISOUTC(timex.LocalDateTime{}); errors.Is(err, timex.ErrInvalidArgument) {
//		// handle
//	}
//
// # Clock
//
// NowUTC and NowUTCMillis read SystemClock unless a Clock is passed:
//
//	fixed := timex.FixedClock(time.Date(2019, 10, 1, 5, 5, 5, 0, time.UTC))
//	timex.NowUTC(fixed) // 2019-10-01T05:05:05
//
// # Day and month bounds
//
// StartOfDay and EndOfDay overwrite hour, minute and second only; the
// nanosecond field is kept. FirstDayOfMonth and LastDayOfMonth return Date
// values and account for leap years.
//
// All functions are safe for concurrent use. Calendar values are not.
package timex
