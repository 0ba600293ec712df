package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	zl      zerolog.Logger
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(writer),
	}
	return Logger{
		zl:      zerolog.New(console).Level(level).With().Timestamp().Logger(),
		Verbose: verbose,
	}
}

func Nop() Logger {
	return Logger{zl: zerolog.Nop()}
}

// With returns a child logger that tags every event with key=value.
func (l Logger) With(key, value string) Logger {
	l.zl = l.zl.With().Str(key, value).Logger()
	return l
}

func (l Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

func (l Logger) Warnf(err error, format string, args ...any) {
	l.zl.Warn().Err(err).Msgf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.zl.Debug().Dur("elapsed", elapsed).Msgf("%s took %s", label, elapsed)
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
