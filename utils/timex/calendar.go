// File: calendar.go
// Title: Legacy Calendar Values
// Description: A mutable instant-plus-zone value as handed over by older
//              APIs, and its normalization to LocalDateTime.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"time"

	"cloud.google.com/go/civil"
)

// Calendar is a mutable instant that carries its own zone. A Calendar with no
// zone is read in the fallback zone (time.Local unless told otherwise).
// Calendars are not safe for concurrent mutation.
type Calendar struct {
	instant  time.Time
	location *time.Location
}

// NewCalendar returns a Calendar at t, zoned in t's location.
func NewCalendar(t time.Time) *Calendar {
	return &Calendar{instant: t, location: t.Location()}
}

// NewCalendarIn returns a Calendar at t zoned in loc. A nil loc leaves the
// Calendar without a zone.
func NewCalendarIn(t time.Time, loc *time.Location) *Calendar {
	return &Calendar{instant: t, location: loc}
}

// Time returns the instant held by the calendar.
func (c *Calendar) Time() time.Time {
	return c.instant
}

// Location returns the embedded zone, nil if none is set.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// SetTime moves the calendar to t without changing its zone.
func (c *Calendar) SetTime(t time.Time) {
	c.instant = t
}

// SetLocation replaces the embedded zone; nil clears it.
func (c *Calendar) SetLocation(loc *time.Location) {
	c.location = loc
}

// AddDate shifts the calendar by the given years, months and days, applied
// to its wall clock in its own zone.
func (c *Calendar) AddDate(years, months, days int) {
	c.instant = c.instant.In(c.zone(time.Local)).AddDate(years, months, days)
}

func (c *Calendar) zone(fallback *time.Location) *time.Location {
	if c.location != nil {
		return c.location
	}
	if fallback != nil {
		return fallback
	}
	return time.Local
}

// FromCalendar converts c to the wall-clock date-time in its embedded zone,
// falling back to the system default zone. A nil calendar yields the absent
// LocalDateTime.
func FromCalendar(c *Calendar) LocalDateTime {
	return FromCalendarIn(c, time.Local)
}

// FromCalendarIn is FromCalendar with an explicit fallback zone for
// calendars that carry none. A nil fallback means time.Local.
func FromCalendarIn(c *Calendar, fallback *time.Location) LocalDateTime {
	if c == nil {
		return LocalDateTime{}
	}
	return civil.DateTimeOf(c.instant.In(c.zone(fallback)))
}

// MaxCalendar normalizes each calendar with FromCalendar and returns their
// Max. Nil calendars are skipped.
func MaxCalendar(calendars ...*Calendar) LocalDateTime {
	// Normalized calendars are always valid, so extreme cannot fail.
	dt, _ := extreme("MaxCalendar", MinDateTime, 1, fromCalendars(calendars))
	return dt
}

// MinCalendar normalizes each calendar with FromCalendar and returns their
// Min. Nil calendars are skipped.
func MinCalendar(calendars ...*Calendar) LocalDateTime {
	dt, _ := extreme("MinCalendar", MaxDateTime, -1, fromCalendars(calendars))
	return dt
}

func fromCalendars(calendars []*Calendar) []LocalDateTime {
	dateTimes := make([]LocalDateTime, 0, len(calendars))
	for _, c := range calendars {
		if c == nil {
			continue
		}
		dateTimes = append(dateTimes, FromCalendar(c))
	}
	return dateTimes
}
