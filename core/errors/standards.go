// File: standards.go
// Title: Standard Error Constructors
// Description: Module identifiers and the constructors used by timex, config
//              and the CLI for the failures they report.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Reduced to the modules and failures of temporal

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/temporal/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTimex  = "timex"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// InvalidArgument reports a required parameter that is absent or not a valid
// value of its type.
func InvalidArgument(module, operation, parameter string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s must be a valid, non-absent value", module, operation, parameter).
		Code(mdwerror.CodeInvalidArgument).
		Detail("parameter", parameter).
		Detail("value", fmt.Sprintf("%v", value)).
		Build()
}

// InvalidFormat reports input that does not match any accepted layout.
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: cannot parse %q", module, operation, fmt.Sprintf("%v", input)).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// InvalidTimezone reports a zone name the tz database does not know.
func InvalidTimezone(module, operation, zone string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: unknown time zone %q", module, operation, zone).
		Cause(cause).
		Code(mdwerror.CodeInvalidTimezone).
		Detail("zone", zone).
		Build()
}

// OperationFailed wraps an unexpected failure of an operation.
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

func detailString(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return ""
	}
	if s, ok := mdwErr.Details()[key].(string); ok {
		return s
	}
	return ""
}
