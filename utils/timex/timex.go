// File: timex.go
// Title: Core Temporal Types and Aggregations
// Description: Defines the local date-time and date value types, the
//              sentinel minimum and maximum, the total order, and the
//              min/max/range operations over local date-times.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Rebuilt around zone-less civil date-times with absence
//                       propagation and sentinel bounds

package timex

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	mdwerror "github.com/msto63/temporal/core/error"
	mdwerrors "github.com/msto63/temporal/core/errors"
)

// LocalDateTime is a calendar date and wall-clock time with no zone attached.
// The zero value is the absent date-time.
type LocalDateTime = civil.DateTime

// Date is a calendar date with no time of day and no zone.
type Date = civil.Date

var (
	// MinDateTime is less than or equal to every other LocalDateTime.
	MinDateTime = LocalDateTime{
		Date: Date{Year: -999999999, Month: time.January, Day: 1},
	}

	// MaxDateTime is greater than or equal to every other LocalDateTime.
	MaxDateTime = LocalDateTime{
		Date: Date{Year: 999999999, Month: time.December, Day: 31},
		Time: civil.Time{Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999},
	}
)

// ErrInvalidArgument matches, via errors.Is, every error returned for an
// absent or malformed required argument.
var ErrInvalidArgument = mdwerror.New("invalid argument").WithCode(mdwerror.CodeInvalidArgument)

// LocalDateTimeOf builds a LocalDateTime from its fields. It does not
// normalize: LocalDateTimeOf(2019, 2, 30, 0, 0, 0) is not a valid value.
func LocalDateTimeOf(year int, month time.Month, day, hour, minute, second int) LocalDateTime {
	return LocalDateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: minute, Second: second},
	}
}

// DateOf builds a Date from its fields without normalizing.
func DateOf(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// IsAbsent reports whether dt is the zero LocalDateTime, the value that
// stands for "no date-time". A set but malformed value is not absent.
func IsAbsent(dt LocalDateTime) bool {
	return dt == LocalDateTime{}
}

// Compare returns -1, 0 or +1 depending on whether a is before, equal to or
// after b in calendar order.
func Compare(a, b LocalDateTime) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Max returns the latest non-absent date-time. Absent entries are skipped;
// with nothing left it returns MinDateTime so the result stays comparable.
// A malformed entry is rejected.
func Max(dateTimes ...LocalDateTime) (LocalDateTime, error) {
	return extreme("Max", MinDateTime, 1, dateTimes)
}

// Min returns the earliest non-absent date-time, or MaxDateTime when there
// is none. A malformed entry is rejected.
func Min(dateTimes ...LocalDateTime) (LocalDateTime, error) {
	return extreme("Min", MaxDateTime, -1, dateTimes)
}

// extreme keeps the first element that compares in direction dir against
// the current best, so ties resolve to the earliest argument.
func extreme(operation string, empty LocalDateTime, dir int, dateTimes []LocalDateTime) (LocalDateTime, error) {
	best, found := empty, false
	for i, dt := range dateTimes {
		if IsAbsent(dt) {
			continue
		}
		if !dt.IsValid() {
			return LocalDateTime{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation, fmt.Sprintf("dateTimes[%d]", i), dt)
		}
		if !found || Compare(dt, best) == dir {
			best, found = dt, true
		}
	}
	return best, nil
}

// IsBetween reports whether from <= value <= to. An absent from means no
// lower bound and an absent to means no upper bound; a bound that is set but
// malformed is rejected. value itself is required.
func IsBetween(value, from, to LocalDateTime) (bool, error) {
	if !value.IsValid() {
		return false, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "IsBetween", "value", value)
	}

	lower, err := boundOr(from, MinDateTime, "from")
	if err != nil {
		return false, err
	}
	upper, err := boundOr(to, MaxDateTime, "to")
	if err != nil {
		return false, err
	}

	return Compare(value, lower) >= 0 && Compare(value, upper) <= 0, nil
}

func boundOr(bound, fallback LocalDateTime, name string) (LocalDateTime, error) {
	if IsAbsent(bound) {
		return fallback, nil
	}
	if !bound.IsValid() {
		return LocalDateTime{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "IsBetween", name, bound)
	}
	return bound, nil
}

// requireValid rejects absent and malformed values; the zero value is not a
// valid calendar date.
func requireValid(operation string, dt LocalDateTime) error {
	if !dt.IsValid() {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation, "dt", dt)
	}
	return nil
}
