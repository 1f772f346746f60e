// SPDX-License-Identifier: MIT

// Package logging builds the slog.Logger used by the wbe command.
//
// Library packages never log on their own; the command creates one logger
// from its flags and hands it to codec.WithLogger. Records go to stderr by
// default so that stdout stays reserved for YAML output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrLevel is returned by ParseLevel for unknown level names.
	ErrLevel = errors.New("logging: unknown level")

	// ErrFormat is returned by New for formats other than text and json.
	ErrFormat = errors.New("logging: unknown format")
)

// Config selects the minimum level, the encoding and the destination.
// The zero value logs Info and above as text to stderr.
type Config struct {
	Level  string    // debug|info|warn|error; "" means info
	Format string    // text|json; "" means text
	Output io.Writer // nil means os.Stderr
}

// ParseLevel maps a case-insensitive level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrLevel)
	}
}

// New returns a logger for cfg.
// Errors: ErrLevel, ErrFormat.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Format, ErrFormat)
	}

	return slog.New(h), nil
}
