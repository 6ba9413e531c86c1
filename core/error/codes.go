// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for date/time handling, config
//              loading and the command-line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes temporal actually raises

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Caller contract violations
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidTimezone,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidTimezone:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps a code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
