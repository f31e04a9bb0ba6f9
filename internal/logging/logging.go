// Package logging builds the slog handler the CLI logs through and exposes it
// to the library packages as a logr.Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-logr/logr"
)

// ParseLevel accepts debug, info, warn and error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// NewHandler returns a text or JSON handler writing to w at level.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func NewHandler(level slog.Level, format string, w io.Writer) (slog.Handler, error) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text", "":
		return slog.NewTextHandler(w, opts), nil
	}
	return nil, fmt.Errorf("log format %q: want text or json", format)
}

// New returns a logr.Logger backed by h with a "component" attribute.
// logr verbosity V(n) maps to slog level -n, so V(1) shows at debug.
func New(h slog.Handler, component string) logr.Logger {
	return logr.FromSlogHandler(h).WithValues("component", component)
}
