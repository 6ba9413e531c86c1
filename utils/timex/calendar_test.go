// File: calendar_test.go
// Title: Legacy Calendar Tests
// Description: Tests for calendar normalization, fallback zones and
//              calendar aggregation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package timex

import (
	"testing"
	"time"
)

func TestFromCalendar(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	minus5 := time.FixedZone("UTC-5", -5*60*60)
	instant := time.Date(2019, time.October, 1, 5, 5, 5, 0, time.UTC)

	testCases := []struct {
		name     string
		calendar *Calendar
		fallback *time.Location
		want     LocalDateTime
	}{
		{"Nil calendar", nil, time.UTC, LocalDateTime{}},
		{"UTC calendar", NewCalendar(instant), plus2, oct1},
		{"Embedded zone wins", NewCalendarIn(instant, plus2), minus5, LocalDateTimeOf(2019, time.October, 1, 7, 5, 5)},
		{"Fallback zone", NewCalendarIn(instant, nil), minus5, LocalDateTimeOf(2019, time.October, 1, 0, 5, 5)},
		{"Fallback crosses day", NewCalendarIn(time.Date(2019, time.October, 1, 2, 0, 0, 0, time.UTC), nil), minus5,
			LocalDateTimeOf(2019, time.September, 30, 21, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromCalendarIn(tc.calendar, tc.fallback); got != tc.want {
				t.Errorf("FromCalendarIn() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFromCalendarDefaultsToLocal(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("UTC-5", -5*60*60)
	t.Cleanup(func() { time.Local = saved })

	c := NewCalendarIn(time.Date(2019, time.October, 1, 5, 5, 5, 0, time.UTC), nil)

	got := FromCalendar(c)
	if got.Time.Hour != 0 {
		t.Errorf("FromCalendar() hour = %d, want 0 in UTC-5", got.Time.Hour)
	}
	if want := LocalDateTimeOf(2019, time.October, 1, 0, 5, 5); got != want {
		t.Errorf("FromCalendar() = %v, want %v", got, want)
	}
	if got := FromCalendar(nil); !IsAbsent(got) {
		t.Errorf("FromCalendar(nil) = %v, want absent", got)
	}
}

func TestCalendarMutation(t *testing.T) {
	berlin, err := LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	c := NewCalendarIn(time.Date(2019, time.March, 30, 12, 0, 0, 0, berlin), berlin)
	c.AddDate(0, 0, 1)

	// DST starts overnight; the wall clock stays at noon.
	if got, want := FromCalendar(c), LocalDateTimeOf(2019, time.March, 31, 12, 0, 0); got != want {
		t.Errorf("after AddDate = %v, want %v", got, want)
	}

	c.SetLocation(time.UTC)
	if got, want := FromCalendar(c), LocalDateTimeOf(2019, time.March, 31, 10, 0, 0); got != want {
		t.Errorf("after SetLocation = %v, want %v", got, want)
	}

	c.SetTime(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
	if got, want := FromCalendar(c), LocalDateTimeOf(2020, time.January, 1, 0, 0, 0); got != want {
		t.Errorf("after SetTime = %v, want %v", got, want)
	}
	if c.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", c.Location())
	}
}

func TestMaxMinCalendar(t *testing.T) {
	a := NewCalendar(time.Date(2019, time.October, 1, 5, 5, 5, 0, time.UTC))
	b := NewCalendar(time.Date(2019, time.October, 31, 23, 0, 0, 0, time.UTC))

	if got := MaxCalendar(a, nil, b); got != oct31 {
		t.Errorf("MaxCalendar() = %v, want %v", got, oct31)
	}
	if got := MinCalendar(nil, b, a); got != oct1 {
		t.Errorf("MinCalendar() = %v, want %v", got, oct1)
	}
	if got := MaxCalendar(); got != MinDateTime {
		t.Errorf("MaxCalendar() = %v, want MinDateTime", got)
	}
	if got := MinCalendar(nil); got != MaxDateTime {
		t.Errorf("MinCalendar(nil) = %v, want MaxDateTime", got)
	}
}
