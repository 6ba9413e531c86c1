// Package config loads TOML and YAML configuration with environment
// variable overrides.
//
// Package: config
// Title: Configuration Management
// Description: File discovery, TOML/YAML parsing, dot-notation lookups with
//              defaults, environment overrides, and the typed settings read
//              by the temporal CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to the temporal CLI settings
//
// Precedence, highest first: environment variable, file value, default.
// With prefix TEMPORAL the key time.default_zone is overridden by
// TEMPORAL_TIME_DEFAULT_ZONE.
//
// Example temporal.toml:
//
//	[time]
//	default_zone = "Europe/Berlin"
//
//	[output]
//	format = "json"
//
//	[log]
//	level = "info"
//	format = "logfmt"
package config
