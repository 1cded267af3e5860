/*
Package logx provides the structured logger used across navshell.

The terminal belongs to the UI, so log lines go to a file. Development mode
switches to zerolog's human readable console format in that same file.
*/
package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures the global logger.
type Options struct {
	Path        string
	Level       string
	Development bool
}

// Init configures the global zerolog logger and returns a closer for the log file.
func Init(opts Options) (io.Closer, error) {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.WriteCloser = nopCloser{io.Discard}
	if strings.TrimSpace(opts.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	var w io.Writer = out
	if opts.Development {
		w = zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Caller().Logger()
	return out, nil
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// checkFields drops key-value lists with an odd count instead of letting
// zerolog panic on them.
func checkFields(level string, fields []any) []any {
	if len(fields)%2 != 0 {
		Logger().Warn().
			Int("fields_count", len(fields)).
			Str("log_level", level).
			Msgf("logx %s call received an odd number of fields, ignored", level)
		return nil
	}
	return fields
}

func Debug(msg string, fields ...any) {
	fields = checkFields("debug", fields)
	Logger().Debug().Fields(fields).CallerSkipFrame(1).Msg(msg)
}

func Info(msg string, fields ...any) {
	fields = checkFields("info", fields)
	Logger().Info().Fields(fields).CallerSkipFrame(1).Msg(msg)
}

func Warn(msg string, fields ...any) {
	fields = checkFields("warn", fields)
	Logger().Warn().Fields(fields).CallerSkipFrame(1).Msg(msg)
}

// Error logs err with msg and optional key-value fields.
func Error(err error, msg string, fields ...any) {
	fields = checkFields("error", fields)
	Logger().Error().Err(err).Fields(fields).CallerSkipFrame(1).Msg(msg)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
