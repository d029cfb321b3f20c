// Package log provides context-aware diagnostics for spm.
//
// Everything goes to stderr so stdout stays reserved for data. Plain
// messages use Printf/Println; structured debug and warning records go
// through log/slog with a tint handler.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Logger writes user-facing diagnostics and structured debug records.
type Logger struct {
	out     io.Writer
	verbose bool
	slog    *slog.Logger
}

// New creates a logger writing to out. verbose enables debug records;
// quiet suppresses everything and wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	if quiet {
		out = io.Discard
		verbose = false
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(out, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(out),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise for a short-lived CLI.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})

	return &Logger{out: out, verbose: verbose, slog: slog.New(handler)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	fmt.Fprintln(l.out, args...)
}

// Debug logs a structured record, shown only in verbose mode.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Warn logs a structured warning, shown unless quiet.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Slog returns the underlying structured logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// IsVerbose returns true if debug records are shown.
func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
