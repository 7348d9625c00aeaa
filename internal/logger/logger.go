/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu sync.RWMutex

	// Default logs to stderr. Set to io.Discard for silent mode (MCP).
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	asJSON bool
	logger zerolog.Logger
)

func init() {
	rebuild()
}

// rebuild must be called with mu held for writing, or from init.
func rebuild() {
	var w io.Writer = output
	if !asJSON {
		console := zerolog.NewConsoleWriter()
		console.Out = output
		console.NoColor = true
		console.TimeFormat = time.Kitchen
		console.PartsExclude = []string{zerolog.TimestampFieldName}
		w = console
	}
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// SetLevel sets the minimum level by name: debug, info, warn, error.
func SetLevel(name string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return err
	}
	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	mu.Lock()
	defer mu.Unlock()
	level = parsed
	rebuild()
	return nil
}

// SetJSON switches between structured JSON lines and console output.
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	asJSON = enabled
	rebuild()
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Error logs an error with a message.
func Error(err error, format string, args ...any) {
	current().Error().Err(err).Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current().Debug().Msgf(format, args...)
}
