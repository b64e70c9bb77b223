package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.IdleTimeout.Duration < 0 {
		errs = append(errs, "SERVER_*_TIMEOUT must be non-negative")
	}
	if c.Server.RequestTimeout.Duration <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, "SERVER_MAX_BODY_BYTES must be positive")
	}

	// Numeric validation
	if c.Numeric.H0 <= 0 {
		errs = append(errs, fmt.Sprintf("NUMERIC_H0 (%v) must be positive", c.Numeric.H0))
	}
	if c.Numeric.Steps < 1 {
		errs = append(errs, "NUMERIC_STEPS must be at least 1")
	}
	if c.Numeric.SimpsonIntervals < 2 || c.Numeric.SimpsonIntervals%2 != 0 {
		errs = append(errs, fmt.Sprintf("NUMERIC_SIMPSON_INTERVALS (%d) must be even and >= 2", c.Numeric.SimpsonIntervals))
	}
	if c.Numeric.GaussOrder < 1 {
		errs = append(errs, "NUMERIC_GAUSS_ORDER must be at least 1")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Server: {Addr: %q, RequestTimeout: %s}, ", c.Server.Addr(), c.Server.RequestTimeout)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}, ", c.Logging.Level, c.Logging.Format)
	fmt.Fprintf(&b, "Numeric: {H0: %v, Steps: %d, SimpsonIntervals: %d, GaussOrder: %d}",
		c.Numeric.H0, c.Numeric.Steps, c.Numeric.SimpsonIntervals, c.Numeric.GaussOrder)
	b.WriteString("}")

	return b.String()
}
