/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the default log level when set.
const EnvLogLevel = "LOG_LEVEL"

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
// Unknown names map to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NewLogger returns a logger writing to w that tags every record with the
// component name and version.
func NewLogger(w io.Writer, name, version string, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("name", name),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a JSON logger on stderr as the default.
// The level comes from LOG_LEVEL and defaults to info.
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultLoggerWithLevel(name, version, os.Getenv(EnvLogLevel), true)
}

// SetDefaultLoggerWithLevel installs a logger on stderr as the default.
func SetDefaultLoggerWithLevel(name, version, level string, json bool) {
	slog.SetDefault(NewLogger(os.Stderr, name, version, ParseLevel(level), json))
}
