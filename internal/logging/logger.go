// Package logging builds the charm logger shared by the command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variables read by New.
const (
	EnvLevel  = "MSA86_LOG_LEVEL"
	EnvPrefix = "MSA86_LOG_PREFIX"
)

// New creates a logger writing to w.
// MSA86_LOG_LEVEL: debug, info, warn, error (default: info)
// MSA86_LOG_PREFIX: prefix for log messages (default: none)
func New(w io.Writer) *log.Logger {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	lg.SetLevel(Level(os.Getenv(EnvLevel)))

	if prefix := os.Getenv(EnvPrefix); prefix != "" {
		lg.SetPrefix(prefix)
	}
	return lg
}

// Level maps a level name to a log level, defaulting to info.
func Level(name string) log.Level {
	switch name {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return os.Getenv(EnvLevel) == "debug"
}
