// File: settings.go
// Title: Typed CLI Settings
// Description: The typed view of the keys the temporal CLI reads, with
//              defaults and validation of the enumerated values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/temporal/core/error"
)

// Configuration keys
const (
	KeyDefaultZone  = "time.default_zone"
	KeyOutputFormat = "output.format"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// Defaults returns the value of every key when nothing else sets it.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyDefaultZone:  "Local",
		KeyOutputFormat: "text",
		KeyLogLevel:     "info",
		KeyLogFormat:    "console",
	}
}

// Settings is the resolved CLI configuration.
type Settings struct {
	DefaultZone  string
	OutputFormat string
	LogLevel     string
	LogFormat    string
}

var allowed = map[string][]string{
	KeyOutputFormat: {"text", "json", "plain"},
	KeyLogLevel:     {"trace", "debug", "info", "warn", "error"},
	KeyLogFormat:    {"console", "text", "json", "logfmt"},
}

// SettingsFrom reads and validates the CLI settings from c.
func SettingsFrom(c *Config) (Settings, error) {
	defaults := Defaults()
	get := func(key string) string {
		return strings.ToLower(strings.TrimSpace(c.GetString(key, defaults[key].(string))))
	}

	s := Settings{
		DefaultZone:  strings.TrimSpace(c.GetString(KeyDefaultZone, defaults[KeyDefaultZone].(string))),
		OutputFormat: get(KeyOutputFormat),
		LogLevel:     get(KeyLogLevel),
		LogFormat:    get(KeyLogFormat),
	}

	checks := map[string]string{
		KeyOutputFormat: s.OutputFormat,
		KeyLogLevel:     s.LogLevel,
		KeyLogFormat:    s.LogFormat,
	}
	for key, value := range checks {
		if !oneOf(value, allowed[key]) {
			return Settings{}, mdwerror.New(fmt.Sprintf("%s must be one of %s, got %q", key, strings.Join(allowed[key], ", "), value)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.SettingsFrom").
				WithDetail("key", key).
				WithDetail("value", value)
		}
	}
	if s.DefaultZone == "" {
		return Settings{}, mdwerror.New(KeyDefaultZone + " cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.SettingsFrom").
			WithDetail("key", KeyDefaultZone)
	}

	return s, nil
}

func oneOf(value string, options []string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}
