package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger shared by all commands. verbose enables
// debug output.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "hamtour",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// stopwatch times a whole command for its closing summary line.
type stopwatch time.Time

func startStopwatch() stopwatch { return stopwatch(time.Now()) }

// finish logs msg at info level with keyvals and an "elapsed" field.
func (s stopwatch) finish(l *log.Logger, msg string, keyvals ...any) {
	elapsed := time.Since(time.Time(s)).Round(time.Millisecond)
	l.Info(msg, append(keyvals, "elapsed", elapsed)...)
}

type loggerKey struct{}

func contextWithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom falls back to log.Default() when the command ran without the
// root command's pre-run hook.
func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
