// File: convert.go
// Title: UTC Conversions
// Description: Conversions between instants, epoch milliseconds and UTC
//              local date-times, and ISO-8601 rendering in UTC.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: ToUTC, UnixMilli and ToUnixMilli on time.Time
// - 2026-10-19 v0.2.0: Conversions produce civil date-times; zero millis and
//                       nil instants are absent

package timex

import (
	"time"

	"cloud.google.com/go/civil"

	mdwerrors "github.com/msto63/temporal/core/errors"
)

// ISOUTCLayout renders a UTC wall clock with a trailing Z. Fractional
// seconds appear only when non-zero.
const ISOUTCLayout = time.RFC3339Nano

// ToUTC returns the UTC wall clock of the instant t. A nil t is no
// timestamp and yields the absent LocalDateTime.
func ToUTC(t *time.Time) LocalDateTime {
	if t == nil {
		return LocalDateTime{}
	}
	return civil.DateTimeOf(t.UTC())
}

// ToUTCFromMillis returns the UTC wall clock millis milliseconds after the
// Unix epoch. Zero is reserved for "no timestamp" and yields the absent
// LocalDateTime, so 1970-01-01T00:00:00 cannot be produced this way.
func ToUTCFromMillis(millis int64) LocalDateTime {
	if millis == 0 {
		return LocalDateTime{}
	}
	return civil.DateTimeOf(time.UnixMilli(millis).UTC())
}

// ToUTCMillis returns the instant t as milliseconds since the Unix epoch.
// The zone of t only affects how it was constructed, not the result. t is
// required; nil is rejected.
func ToUTCMillis(t *time.Time) (int64, error) {
	if t == nil {
		return 0, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "ToUTCMillis", "t", nil)
	}
	return t.UnixMilli(), nil
}

// FormatISOUTC renders dt, read as a UTC wall clock, as an ISO-8601 string
// such as 2019-10-01T05:05:05Z.
func FormatISOUTC(dt LocalDateTime) (string, error) {
	if err := requireValid("FormatISOUTC", dt); err != nil {
		return "", err
	}
	return dt.In(time.UTC).Format(ISOUTCLayout), nil
}
