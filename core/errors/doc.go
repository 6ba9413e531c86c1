// Package errors provides module-scoped constructors for core/error values.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Every temporal package reports failures through these helpers
//              so errors share the same shape: a code from core/error, the
//              originating module and operation in the details, and a
//              severity derived from the code unless set explicitly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Constructors for argument, format and timezone errors
//
// Usage:
//
//	import mdwerrors "github.com/msto63/temporal/core/errors"
//
//	return mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "StartOfDay", "dt", dt)
package errors
