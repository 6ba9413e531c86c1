// File: parse.go
// Title: Parsing and Zone Lookup
// Description: Parses local date-times and instants from text and resolves
//              IANA zone names through a process-wide cache.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Multi-format Parse and cached timezone lookup
// - 2026-10-19 v0.2.0: Parse yields civil date-times; ParseInstant for
//                       RFC 3339; LoadLocation reports typed errors

package timex

import (
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	mdwerrors "github.com/msto63/temporal/core/errors"
)

// Layouts accepted by Parse after the civil form has been tried.
const (
	SpacedDateTime = "2006-01-02 15:04:05.999999999"
	MinuteDateTime = "2006-01-02T15:04"
	DateOnly       = "2006-01-02"
)

var localLayouts = []string{SpacedDateTime, MinuteDateTime, DateOnly}

// Parse reads a local date-time. Accepted forms are
// 2019-10-01T05:05:05[.nnn], 2019-10-01 05:05:05[.nnn], 2019-10-01T05:05
// and 2019-10-01 (midnight).
func Parse(value string) (LocalDateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return LocalDateTime{}, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, "Parse", value, "2006-01-02T15:04:05")
	}

	if dt, err := civil.ParseDateTime(value); err == nil {
		return dt, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return civil.DateTimeOf(t), nil
		}
	}

	return LocalDateTime{}, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, "Parse", value, "2006-01-02T15:04:05")
}

// ParseInstant reads an RFC 3339 instant with an explicit offset, e.g.
// 2019-10-01T07:05:05+02:00.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, mdwerrors.InvalidFormat(mdwerrors.ModuleTimex, "ParseInstant", value, time.RFC3339)
	}
	return t, nil
}

var (
	locationCache = make(map[string]*time.Location)
	locationMu    sync.RWMutex
)

// LoadLocation resolves an IANA zone name ("Europe/Berlin", "UTC", "Local")
// and caches the result.
func LoadLocation(name string) (*time.Location, error) {
	locationMu.RLock()
	if loc, ok := locationCache[name]; ok {
		locationMu.RUnlock()
		return loc, nil
	}
	locationMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, mdwerrors.InvalidTimezone(mdwerrors.ModuleTimex, "LoadLocation", name, err)
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc, nil
}
