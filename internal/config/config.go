// Package config loads the server configuration for whtreportd.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-whtreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// Defaults applied when a field is absent from the file, or when no file
// is given at all.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = "15s"
	DefaultWriteTimeout    = "30s"
	DefaultShutdownTimeout = "10s"
	DefaultLogLevel        = "info"
)

// Config holds all configuration for the report server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig defines the HTTP listener. Timeouts are duration strings
// ("15s", "1m30s").
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"readTimeout"`
	WriteTimeout    string `yaml:"writeTimeout"`
	ShutdownTimeout string `yaml:"shutdownTimeout"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads and validates a config file. An empty path returns defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fileCfg Config
	if err := yamlutil.UnmarshalStrict(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.merge(&fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays non-empty fields from other.
func (c *Config) merge(other *Config) {
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.ReadTimeout != "" {
		c.Server.ReadTimeout = other.Server.ReadTimeout
	}
	if other.Server.WriteTimeout != "" {
		c.Server.WriteTimeout = other.Server.WriteTimeout
	}
	if other.Server.ShutdownTimeout != "" {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// Validate checks that every timeout parses as a positive duration.
func (c *Config) Validate() error {
	for _, tc := range []struct {
		name  string
		value string
	}{
		{"readTimeout", c.Server.ReadTimeout},
		{"writeTimeout", c.Server.WriteTimeout},
		{"shutdownTimeout", c.Server.ShutdownTimeout},
	} {
		d, err := time.ParseDuration(tc.value)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidTimeout, tc.name, tc.value)
		}
		if d <= 0 {
			return fmt.Errorf("%w: %s %q (must be positive)", ErrInvalidTimeout, tc.name, tc.value)
		}
	}
	return nil
}

// ReadTimeout returns the parsed read timeout. Call Validate first.
func (c *Config) ReadTimeout() time.Duration { return mustDuration(c.Server.ReadTimeout) }

// WriteTimeout returns the parsed write timeout. Call Validate first.
func (c *Config) WriteTimeout() time.Duration { return mustDuration(c.Server.WriteTimeout) }

// ShutdownTimeout returns the parsed shutdown timeout. Call Validate first.
func (c *Config) ShutdownTimeout() time.Duration { return mustDuration(c.Server.ShutdownTimeout) }

func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
