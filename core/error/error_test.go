// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping, code matching and
//              serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Tests for Is matching and errors.As lookups

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("StackTrace()[0] = %s, want the calling test", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad value %d", 42)
	if err.Error() != "bad value 42" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad value 42")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("month out of range").WithCode(CodeValueOutOfRange),
			message:  "wrapper message",
			wantMsg:  "wrapper message: month out of range",
			wantCode: CodeValueOutOfRange,
		},
		{
			name:     "wrap fmt-wrapped structured error",
			err:      fmt.Errorf("outer: %w", New("bad zone").WithCode(CodeInvalidTimezone)),
			message:  "wrapper message",
			wantMsg:  "wrapper message: outer: bad zone",
			wantCode: CodeInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestWrapCopiesDetails(t *testing.T) {
	inner := New("inner").WithDetail("parameter", "dt")
	outer := Wrap(inner, "outer").WithDetail("operation", "StartOfDay")

	details := outer.Details()
	if details["parameter"] != "dt" {
		t.Errorf("Details()[parameter] = %v, want dt", details["parameter"])
	}
	if _, ok := inner.Details()["operation"]; ok {
		t.Error("Wrap() should not write details back into the inner error")
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) should be true")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}

	if middle.Unwrap() != original {
		t.Error("Unwrap() should return the direct cause")
	}
}

func TestIs(t *testing.T) {
	sentinel := New("invalid argument").WithCode(CodeInvalidArgument)
	unknown := New("something")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same code", New("dt is absent").WithCode(CodeInvalidArgument), sentinel, true},
		{"wrapped same code", fmt.Errorf("cli: %w", New("x").WithCode(CodeInvalidArgument)), sentinel, true},
		{"different code", New("bad").WithCode(CodeInvalidFormat), sentinel, false},
		{"unknown codes do not match", New("other"), unknown, false},
		{"identity", unknown, unknown, true},
		{"standard error target", New("x").WithCode(CodeInvalidArgument), errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidArgument, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidArgument)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": "two"})

	details := err.Details()
	details["a"] = 99

	if err.Details()["a"] != 1 {
		t.Error("Details() should return a copy")
	}
}

func TestString(t *testing.T) {
	err := New("value is absent").
		WithCode(CodeInvalidArgument).
		WithOperation("timex.EndOfDay").
		WithDetail("parameter", "dt").
		WithDetail("module", "timex")

	s := err.String()
	for _, want := range []string{
		"Error: value is absent",
		"Code: INVALID_ARGUMENT",
		"Severity: low",
		"Operation: timex.EndOfDay",
		"Details: {module=timex, parameter=dt}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root"), "top").
		WithCode(CodeInvalidFormat).
		WithOperation("timex.Parse").
		WithDetail("input", "2019-13-01")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "INVALID_FORMAT" {
		t.Errorf("code = %v, want INVALID_FORMAT", decoded["code"])
	}
	if decoded["operation"] != "timex.Parse" {
		t.Errorf("operation = %v, want timex.Parse", decoded["operation"])
	}
	if decoded["cause"] != "root" {
		t.Errorf("cause = %v, want root", decoded["cause"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestHelpers(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeNotFound))

	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode() should find the wrapped code")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(err))
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}
