// File: bounds.go
// Title: Day and Month Boundaries
// Description: Start and end of day by overwriting the hour, minute and
//              second fields, and first and last calendar day of a month.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StartOfDay, EndOfDay, StartOfMonth, EndOfMonth on time.Time
// - 2026-10-19 v0.2.0: Three-field day truncation on civil date-times, month
//                       bounds as dates via jinzhu/now

package timex

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/jinzhu/now"
)

// StartOfDay sets hour, minute and second of dt to 00:00:00. The nanosecond
// field is left as it is.
func StartOfDay(dt LocalDateTime) (LocalDateTime, error) {
	if err := requireValid("StartOfDay", dt); err != nil {
		return LocalDateTime{}, err
	}
	return withClock(dt, 0, 0, 0), nil
}

// EndOfDay sets hour, minute and second of dt to 23:59:59. The nanosecond
// field is left as it is, so the result is not the last instant of the day.
func EndOfDay(dt LocalDateTime) (LocalDateTime, error) {
	if err := requireValid("EndOfDay", dt); err != nil {
		return LocalDateTime{}, err
	}
	return withClock(dt, 23, 59, 59), nil
}

func withClock(dt LocalDateTime, hour, minute, second int) LocalDateTime {
	dt.Time.Hour = hour
	dt.Time.Minute = minute
	dt.Time.Second = second
	return dt
}

// FirstDayOfMonth returns the first day of the month containing dt.
func FirstDayOfMonth(dt LocalDateTime) (Date, error) {
	if err := requireValid("FirstDayOfMonth", dt); err != nil {
		return Date{}, err
	}
	return civil.DateOf(now.With(dt.In(time.UTC)).BeginningOfMonth()), nil
}

// LastDayOfMonth returns the last day of the month containing dt, leap years
// included.
func LastDayOfMonth(dt LocalDateTime) (Date, error) {
	if err := requireValid("LastDayOfMonth", dt); err != nil {
		return Date{}, err
	}
	return civil.DateOf(now.With(dt.In(time.UTC)).EndOfMonth()), nil
}
