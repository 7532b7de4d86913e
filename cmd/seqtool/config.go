package main

import (
	"io"

	"github.com/rs/zerolog"
)

// Config holds the runtime configuration of a seqtool invocation.
type Config struct {
	// Input is the path of the JSON array to read. "-" reads stdin.
	// Defaults to "-".
	Input string

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Defaults to "warn".
	LogLevel string
}

// DefaultConfig returns a [Config] populated with defaults.
func DefaultConfig() Config {
	return Config{
		Input:    "-",
		LogLevel: "warn",
	}
}

// Logger builds the console logger described by c, writing to w.
// An unknown level falls back to warn.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("app", "seqtool").
		Logger()
}
