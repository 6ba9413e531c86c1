// Package error provides the structured error type used across temporal.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a code, a severity, free-form details, the
//              operation that failed and a captured stack trace. They stay
//              compatible with the standard error interface, including
//              errors.Is matching by code and errors.Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Narrowed codes to date/time handling, added Is matching
//
// Usage:
//
//	import mdwerror "github.com/msto63/temporal/core/error"
//
//	err := mdwerror.New("value must not be absent").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("timex.StartOfDay").
//		WithDetail("parameter", "dt")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// reject the call
//	}
package error
