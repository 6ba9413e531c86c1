// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and reading
//              configuration data from TOML and YAML files with environment
//              variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: String values only; defaults merged at load time;
//                       dropped watching and typed getters

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/temporal/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto picks the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

var decoders = map[Format]func([]byte, interface{}) error{
	FormatTOML: toml.Unmarshal,
	FormatYAML: yaml.Unmarshal,
}

// Config holds configuration values addressed by dot-notation keys such as
// "time.default_zone". A Config is meant to be read by one goroutine; Set is
// not synchronized.
type Config struct {
	data      map[string]interface{}
	filePath  string
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: TOML, or by extension for files)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, dot notation allowed
}

// LoadWithOptions reads and decodes the file at filePath.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	case err != nil:
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	if options.Format == FormatAuto {
		options.Format = formatOf(filePath)
	}
	c, decodeErr := decode(content, options)
	if decodeErr != nil {
		return nil, decodeErr.WithDetail("filePath", filePath)
	}
	c.filePath = filePath
	return c, nil
}

// LoadFromString decodes content. FormatAuto is read as TOML.
func LoadFromString(content string, options LoadOptions) (*Config, error) {
	if options.Format == FormatAuto {
		options.Format = FormatTOML
	}
	c, err := decode([]byte(content), options)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Empty returns a configuration without file data. Defaults and environment
// overrides still apply.
func Empty(options LoadOptions) *Config {
	return newConfig(nil, options)
}

func decode(content []byte, options LoadOptions) (*Config, *mdwerror.Error) {
	unmarshal, ok := decoders[options.Format]
	if !ok {
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", options.Format)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.decode")
	}

	var data map[string]interface{}
	if err := unmarshal(content, &data); err != nil {
		return nil, mdwerror.Wrap(err, options.Format.String()+" parse error").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.decode").
			WithDetail("format", options.Format.String())
	}
	return newConfig(data, options), nil
}

func newConfig(data map[string]interface{}, options LoadOptions) *Config {
	c := &Config{data: data, envPrefix: options.EnvPrefix}
	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	for key, value := range options.Defaults {
		if _, found := c.lookup(key); !found {
			c.Set(key, value)
		}
	}
	return c
}

func formatOf(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// GetString returns the value of key. The environment override wins over
// the file; defaultValue is used when neither sets the key.
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := os.Getenv(c.EnvKey(key)); env != "" {
		return env
	}
	if value, found := c.lookup(key); found {
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// Has reports whether key is set by the file, a default or the environment.
func (c *Config) Has(key string) bool {
	_, found := c.lookup(key)
	return found || os.Getenv(c.EnvKey(key)) != ""
}

// Set stores value under key for this process only.
func (c *Config) Set(key string, value interface{}) {
	parent, leaf := c.walk(key, true)
	parent[leaf] = value
}

// EnvKey converts a config key to its environment variable name:
// time.default_zone -> TEMPORAL_TIME_DEFAULT_ZONE with prefix TEMPORAL.
func (c *Config) EnvKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

// FilePath returns the path of the loaded configuration file, empty when
// the configuration did not come from a file.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) lookup(key string) (interface{}, bool) {
	parent, leaf := c.walk(key, false)
	if parent == nil {
		return nil, false
	}
	value, found := parent[leaf]
	return value, found && value != nil
}

// walk returns the table holding the last segment of key. With create set,
// missing tables are added on the way; otherwise a missing table yields nil.
func (c *Config) walk(key string, create bool) (map[string]interface{}, string) {
	segments := strings.Split(key, ".")
	table := c.data
	for _, segment := range segments[:len(segments)-1] {
		next, ok := table[segment].(map[string]interface{})
		if !ok {
			if !create {
				return nil, ""
			}
			next = make(map[string]interface{})
			table[segment] = next
		}
		table = next
	}
	return table, segments[len(segments)-1]
}
