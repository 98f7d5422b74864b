// Package config loads application settings from environment variables,
// applies defaults and validates the result on startup.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Chart   ChartConfig
	Source  SourceConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// ChartConfig describes the export layout and the initial selection.
type ChartConfig struct {
	// BaseYear is the year of the first value pair in each row (default: 2013)
	BaseYear int `env:"CHART_BASE_YEAR" default:"2013"`

	// DefaultYear is selected on startup (default: 2013)
	DefaultYear int `env:"CHART_DEFAULT_YEAR" default:"2013"`

	// StartMarker is the first character of the first data row id
	StartMarker string `env:"CHART_START_MARKER" default:"A"`

	// FooterMarker starts the totals row that ends the table
	FooterMarker string `env:"CHART_FOOTER_MARKER" default:"totaal"`
}

// SourceConfig selects where the export is read from.
type SourceConfig struct {
	// Key is the path (fs) or object key (s3, memory) of the export
	Key string `env:"CHART_SOURCE" default:"index.csv"`

	// Driver is fs, s3 or memory (default: fs)
	Driver string `env:"CHART_SOURCE_DRIVER" default:"fs"`

	FSRoot string `env:"CHART_FS_ROOT"`

	S3Bucket    string `env:"CHART_S3_BUCKET"`
	S3Region    string `env:"CHART_S3_REGION" default:"us-east-1"`
	S3Endpoint  string `env:"CHART_S3_ENDPOINT"`
	S3PathStyle bool   `env:"CHART_S3_PATH_STYLE" default:"false"`

	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is json or console (default: console)
	Format string `env:"LOG_FORMAT" default:"console"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Chart.BaseYear <= 0 {
		errs = append(errs, fmt.Sprintf("CHART_BASE_YEAR (%d) must be positive", c.Chart.BaseYear))
	}
	if c.Chart.DefaultYear < c.Chart.BaseYear {
		errs = append(errs, fmt.Sprintf("CHART_DEFAULT_YEAR (%d) must be >= CHART_BASE_YEAR (%d)",
			c.Chart.DefaultYear, c.Chart.BaseYear))
	}
	if c.Chart.StartMarker == "" {
		errs = append(errs, "CHART_START_MARKER must not be empty")
	}
	if c.Chart.FooterMarker == "" {
		errs = append(errs, "CHART_FOOTER_MARKER must not be empty")
	}

	if c.Source.Key == "" {
		errs = append(errs, "CHART_SOURCE is required")
	}
	switch strings.ToLower(c.Source.Driver) {
	case "fs", "memory":
	case "s3":
		if c.Source.S3Bucket == "" {
			errs = append(errs, "CHART_S3_BUCKET is required when CHART_SOURCE_DRIVER is s3")
		}
	default:
		errs = append(errs, fmt.Sprintf("CHART_SOURCE_DRIVER (%q) must be one of: fs, s3, memory", c.Source.Driver))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: console, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// String returns a safe representation for logging. Credentials are masked.
func (c *Config) String() string {
	secret := ""
	if c.Source.S3AccessKeyID != "" {
		secret = "[MASKED]"
	}
	return fmt.Sprintf("Config{Server: {Addr: %q}, Chart: {BaseYear: %d, DefaultYear: %d}, "+
		"Source: {Driver: %q, Key: %q, Bucket: %q, AccessKey: %q}, Logging: {Level: %q, Format: %q}}",
		c.Server.Addr(), c.Chart.BaseYear, c.Chart.DefaultYear,
		c.Source.Driver, c.Source.Key, c.Source.S3Bucket, secret,
		c.Logging.Level, c.Logging.Format)
}
