// File: timex_test.go
// Title: Core Temporal Types Tests
// Description: Tests for ordering, min/max aggregation with absent entries
//              and sentinels, and inclusive range checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: Tests for civil date-time aggregation and absence

package timex

import (
	"errors"
	"testing"
	"time"

	mdwerror "github.com/msto63/temporal/core/error"
)

var (
	oct1  = LocalDateTimeOf(2019, time.October, 1, 5, 5, 5)
	oct2  = LocalDateTimeOf(2019, time.October, 2, 0, 0, 0)
	oct31 = LocalDateTimeOf(2019, time.October, 31, 23, 0, 0)
)

// ===============================
// Ordering Tests
// ===============================

func TestCompare(t *testing.T) {
	withNanos := oct1
	withNanos.Time.Nanosecond = 1

	testCases := []struct {
		name string
		a, b LocalDateTime
		want int
	}{
		{"Equal", oct1, oct1, 0},
		{"Earlier day", oct1, oct2, -1},
		{"Later day", oct2, oct1, 1},
		{"Nanosecond decides", oct1, withNanos, -1},
		{"Sentinels", MinDateTime, MaxDateTime, -1},
		{"Max above real value", MaxDateTime, oct31, 1},
		{"Min below real value", MinDateTime, oct1, -1},
		{"Year boundary", LocalDateTimeOf(2019, time.December, 31, 23, 59, 59), LocalDateTimeOf(2020, time.January, 1, 0, 0, 0), -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIsAbsent(t *testing.T) {
	if !IsAbsent(LocalDateTime{}) {
		t.Error("zero LocalDateTime should be absent")
	}
	if IsAbsent(LocalDateTimeOf(2019, time.February, 30, 0, 0, 0)) {
		t.Error("February 30 is malformed, not absent")
	}
	if IsAbsent(oct1) {
		t.Error("2019-10-01T05:05:05 should not be absent")
	}
}

// ===============================
// Aggregation Tests
// ===============================

func TestMaxMin(t *testing.T) {
	testCases := []struct {
		name    string
		input   []LocalDateTime
		wantMax LocalDateTime
		wantMin LocalDateTime
	}{
		{"Empty", nil, MinDateTime, MaxDateTime},
		{"Single", []LocalDateTime{oct1}, oct1, oct1},
		{"Unordered", []LocalDateTime{oct2, oct31, oct1}, oct31, oct1},
		{"Absent skipped", []LocalDateTime{{}, oct2, {}, oct1}, oct2, oct1},
		{"Only absent", []LocalDateTime{{}, {}}, MinDateTime, MaxDateTime},
		{"Duplicates", []LocalDateTime{oct1, oct1}, oct1, oct1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotMax, err := Max(tc.input...)
			if err != nil {
				t.Fatalf("Max() unexpected error: %v", err)
			}
			if gotMax != tc.wantMax {
				t.Errorf("Max() = %v, want %v", gotMax, tc.wantMax)
			}
			gotMin, err := Min(tc.input...)
			if err != nil {
				t.Fatalf("Min() unexpected error: %v", err)
			}
			if gotMin != tc.wantMin {
				t.Errorf("Min() = %v, want %v", gotMin, tc.wantMin)
			}
		})
	}
}

func TestMaxMinBoundEveryInput(t *testing.T) {
	input := []LocalDateTime{oct31, oct1, oct2, MinDateTime, MaxDateTime}
	hi, err := Max(input...)
	if err != nil {
		t.Fatalf("Max() unexpected error: %v", err)
	}
	lo, err := Min(input...)
	if err != nil {
		t.Fatalf("Min() unexpected error: %v", err)
	}

	for _, dt := range input {
		if Compare(hi, dt) < 0 {
			t.Errorf("Max %v is below input %v", hi, dt)
		}
		if Compare(lo, dt) > 0 {
			t.Errorf("Min %v is above input %v", lo, dt)
		}
	}
	if hi != MaxDateTime || lo != MinDateTime {
		t.Errorf("sentinels in input: Max = %v, Min = %v", hi, lo)
	}
}

func TestMaxMinRejectMalformed(t *testing.T) {
	feb30 := LocalDateTimeOf(2019, time.February, 30, 0, 0, 0)

	testCases := []struct {
		name  string
		input []LocalDateTime
	}{
		{"Only malformed", []LocalDateTime{feb30}},
		{"Malformed among valid", []LocalDateTime{oct1, {}, feb30, oct31}},
		{"Bad hour", []LocalDateTime{LocalDateTimeOf(2019, time.October, 1, 24, 0, 0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Max(tc.input...); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Max() error = %v, want ErrInvalidArgument", err)
			}
			if _, err := Min(tc.input...); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Min() error = %v, want ErrInvalidArgument", err)
			}
		})
	}

	// The same value is rejected as a range bound.
	if _, err := IsBetween(oct1, feb30, LocalDateTime{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("IsBetween() error = %v, want ErrInvalidArgument", err)
	}
}

// ===============================
// Range Tests
// ===============================

func TestIsBetween(t *testing.T) {
	testCases := []struct {
		name            string
		value, from, to LocalDateTime
		want            bool
	}{
		{"Inside", oct2, oct1, oct31, true},
		{"Equal to lower bound", oct1, oct1, oct31, true},
		{"Equal to upper bound", oct31, oct1, oct31, true},
		{"Before range", oct1, oct2, oct31, false},
		{"After range", oct31, oct1, oct2, false},
		{"No lower bound", oct1, LocalDateTime{}, oct2, true},
		{"No upper bound", oct31, oct2, LocalDateTime{}, true},
		{"No bounds", oct1, LocalDateTime{}, LocalDateTime{}, true},
		{"Inverted bounds", oct2, oct31, oct1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsBetween(tc.value, tc.from, tc.to)
			if err != nil {
				t.Fatalf("IsBetween() unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("IsBetween(%v, %v, %v) = %v, want %v", tc.value, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsBetweenErrors(t *testing.T) {
	malformed := LocalDateTimeOf(2019, time.February, 30, 0, 0, 0)

	testCases := []struct {
		name            string
		value, from, to LocalDateTime
	}{
		{"Absent value", LocalDateTime{}, oct1, oct31},
		{"Malformed value", malformed, oct1, oct31},
		{"Malformed from", oct2, malformed, oct31},
		{"Malformed to", oct2, oct1, malformed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := IsBetween(tc.value, tc.from, tc.to)
			if err == nil {
				t.Fatal("IsBetween() expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error %v should match ErrInvalidArgument", err)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
				t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidArgument)
			}
		})
	}
}

// ===============================
// Benchmarks
// ===============================

func BenchmarkMax(b *testing.B) {
	input := []LocalDateTime{oct2, oct31, {}, oct1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Max(input...)
	}
}
