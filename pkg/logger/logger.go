package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func GetDefaultLogger() *slog.Logger {
	return NewLogger(os.Stderr, slog.LevelDebug)
}

// NewLogger builds a tint logger on w. Colors are only emitted when w is a
// terminal.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}))

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
