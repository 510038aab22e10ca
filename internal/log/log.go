// Package log is the process-wide logger. Plain Printf/Println output goes
// to Out unchanged; leveled messages go through a slog handler chosen by
// Setup.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Options selects the level ("debug", "info", "warn", "error") and the
// format ("text" or "json") of leveled output.
type Options struct {
	Level  string
	Format string
}

var (
	mu     sync.RWMutex
	Out    io.Writer = os.Stdout
	logger           = newLogger(os.Stderr, slog.LevelInfo, "text")
)

// Setup replaces the leveled logger. w receives all leveled output.
func Setup(w io.Writer, opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	switch format {
	case "", "text":
		format = "text"
	case "json":
	default:
		return fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	mu.Lock()
	logger = newLogger(w, level, format)
	mu.Unlock()
	return nil
}

// Logger returns the current leveled logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	if isTerminal(w) {
		// Interactive runs are short; timestamps are noise.
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log level: unsupported value %q", level)
	}
}

// Debug logs at debug level with slog key/value args.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

func Printf(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

func Println(a ...interface{}) {
	fmt.Fprintln(Out, a...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, a ...interface{}) {
	Logger().Warn(fmt.Sprintf(format, a...))
}
