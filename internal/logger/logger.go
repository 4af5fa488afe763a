// Package logger builds the zerolog logger shared by the server, the access-log
// middleware and the startup tasks (migrations, tracing).
package logger

import (
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout.
func New(level string, loc *time.Location) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter returns a JSON logger writing to w. Timestamps are emitted under
// "ts" and rendered in loc. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Location resolves an IANA timezone name, defaulting to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
