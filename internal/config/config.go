// Package config provides centralized configuration for the lvcalc service.
//
// Values are layered, later sources winning:
//
//  1. `default` struct tags
//  2. a TOML or YAML file, chosen by extension
//  3. a .env file (KEY=VALUE), read without touching the process environment
//  4. LVCALC_* environment variables
//
// Validate runs last and reports every problem at once so a misconfigured
// process fails on startup.
package config

import (
	"net"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcalc/calculus"
)

// EnvPrefix is prepended to every `env` tag.
const EnvPrefix = "LVCALC_"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Numeric NumericConfig `toml:"numeric" yaml:"numeric"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `toml:"host" yaml:"host" env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `toml:"port" yaml:"port" env:"SERVER_PORT" default:"8080"`

	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  Duration `toml:"idle_timeout" yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// RequestTimeout bounds a single calculation request (default: 10s)
	RequestTimeout Duration `toml:"request_timeout" yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"10s"`

	// ShutdownTimeout is how long in-flight requests may take to finish (default: 30s)
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// MaxBodyBytes caps a request body (default: 1 MiB)
	MaxBodyBytes int64 `toml:"max_body_bytes" yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" default:"1048576"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `toml:"level" yaml:"level" env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `toml:"format" yaml:"format" env:"LOG_FORMAT" default:"text"`
}

// NumericConfig holds the server-wide defaults of the numeric tools.
// A request may still override them.
type NumericConfig struct {
	H0               float64 `toml:"h0" yaml:"h0" env:"NUMERIC_H0" default:"0.1"`
	Steps            int     `toml:"steps" yaml:"steps" env:"NUMERIC_STEPS" default:"6"`
	SimpsonIntervals int     `toml:"simpson_intervals" yaml:"simpson_intervals" env:"NUMERIC_SIMPSON_INTERVALS" default:"400"`
	GaussOrder       int     `toml:"gauss_order" yaml:"gauss_order" env:"NUMERIC_GAUSS_ORDER" default:"32"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Options converts the numeric settings to calculus options.
func (c NumericConfig) Options() *calculus.Options {
	return &calculus.Options{
		H0:         c.H0,
		Steps:      c.Steps,
		Intervals:  c.SimpsonIntervals,
		GaussOrder: c.GaussOrder,
	}
}

// Duration wraps time.Duration so that "15s" style strings decode from TOML,
// YAML and environment variables alike.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))

	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a YAML scalar such as "15s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	return d.UnmarshalText([]byte(s))
}
