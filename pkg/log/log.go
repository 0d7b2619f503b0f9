// Package log wraps zerolog behind a small package-level facade so the
// rest of the tool logs through one configured logger.
package log

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Setup adjusts the logger level. Level names are zerolog's
// ("trace", "debug", "info", "warn", "error", "fatal", "panic").
func Setup(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log: unknown level %q: %w", level, err)
	}
	pkgLogger = pkgLogger.Level(lvl)
	return nil
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }

// Printf sends an info-level event. Arguments are handled in the manner
// of fmt.Printf.
func Printf(format string, v ...any) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
