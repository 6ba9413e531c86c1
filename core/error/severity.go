// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is
//              reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity defaults follow the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks caller mistakes such as malformed or absent input
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh marks failures that stop a command, e.g. unreadable config
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidTimezone, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
