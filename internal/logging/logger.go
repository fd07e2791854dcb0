// Package logging builds the zerolog logger shared by the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
)

// New returns a logger writing to cfg.LogFile as JSON lines, or to stderr in
// console format when no file is set. The returned closer releases the file.
func New(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.LogFile == "" {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return NewWithWriter(out, level), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
