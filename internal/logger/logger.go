// Package logger builds the zerolog loggers used across the service.
//
// Every line is a JSON object carrying a "ts" field formatted as RFC3339Nano
// in the configured location, matching the access and migration logs.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TimestampField is the key holding the event time on every log line.
const TimestampField = "ts"

// Options controls logger construction.
type Options struct {
	Level    string
	Pretty   bool
	Location *time.Location
}

// New returns a logger writing to stdout.
func New(opts Options) zerolog.Logger {
	var w io.Writer = os.Stdout
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, opts)
}

// NewWithWriter returns a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, opts Options) zerolog.Logger {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	return zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		Hook(timestampHook(loc))
}

// ParseLevel maps a textual level to zerolog, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func timestampHook(loc *time.Location) zerolog.HookFunc {
	return func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str(TimestampField, time.Now().In(loc).Format(time.RFC3339Nano))
	}
}
