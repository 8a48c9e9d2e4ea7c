// Package logging builds the hclog loggers used across pixelprops.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultPrefix marks every human-readable log line.
const DefaultPrefix = "🪪 "

// Environment variables read by NewLogger.
const (
	EnvLogLevel = "PIXELPROPS_LOG_LEVEL"
	EnvJSONLog  = "PIXELPROPS_JSON_LOG"
)

// Options configures a logger.
type Options struct {
	Name   string
	Level  string
	JSON   bool
	Output io.Writer

	// Prefix is prepended to text lines; empty means DefaultPrefix.
	Prefix string
}

// NewLogger creates a logger honouring PIXELPROPS_JSON_LOG. An empty level
// is taken from GetLogLevel.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if level == "" {
		level = GetLogLevel()
	}
	return NewLoggerWithOptions(Options{
		Name:   name,
		Level:  level,
		JSON:   os.Getenv(EnvJSONLog) == "1",
		Output: output,
	})
}

// NewLoggerWithOptions creates a logger from explicit options.
func NewLoggerWithOptions(opts Options) hclog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	if !opts.JSON {
		prefix := opts.Prefix
		if prefix == "" {
			prefix = DefaultPrefix
		}
		output = NewPrefixWriter(prefix, output)
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      level,
		JSONFormat: opts.JSON,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "warn"
	}
	return level
}
